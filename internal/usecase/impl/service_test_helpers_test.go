package impl

import (
	"context"
	"io"
	"log/slog"

	"cookbook/internal/domain/entity"
	"cookbook/internal/domain/repository"
	"cookbook/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo implements repository.UserRepository with function fields so
// each test plugs in exactly the behavior it needs.
type fakeUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.findByEmailFn(ctx, email)
}

type fakeRecipeRepo struct {
	createFn   func(ctx context.Context, recipe *entity.Recipe) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
}

func (f *fakeRecipeRepo) Create(ctx context.Context, recipe *entity.Recipe) error {
	return f.createFn(ctx, recipe)
}

func (f *fakeRecipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	return f.findByIDFn(ctx, id)
}

type fakeFollowRepo struct {
	createFn func(ctx context.Context, follow *entity.Follow) error
	deleteFn func(ctx context.Context, followerID, followedID uuid.UUID) error
}

func (f *fakeFollowRepo) Create(ctx context.Context, follow *entity.Follow) error {
	return f.createFn(ctx, follow)
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	return f.deleteFn(ctx, followerID, followedID)
}

// fakeFactory hands out the fake repositories inside a scope callback.
type fakeFactory struct {
	users   *fakeUserRepo
	recipes *fakeRecipeRepo
	follows *fakeFollowRepo
}

func (f *fakeFactory) Users() repository.UserRepository     { return f.users }
func (f *fakeFactory) Recipes() repository.RecipeRepository { return f.recipes }
func (f *fakeFactory) Follows() repository.FollowRepository { return f.follows }

// fakeScope runs the callback directly against the fake factory, standing in
// for the transactional scope without a database.
type fakeScope struct {
	factory *fakeFactory
}

func (s *fakeScope) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

type fakeHasher struct {
	hashFn  func(password string) (string, error)
	checkFn func(password, digest string) (bool, error)
}

func (f *fakeHasher) Hash(password string) (string, error) {
	return f.hashFn(password)
}

func (f *fakeHasher) Check(password, digest string) (bool, error) {
	return f.checkFn(password, digest)
}

type fakeTokenService struct {
	issueFn  func(subjectID uuid.UUID) (string, error)
	verifyFn func(token string) (*service.Claims, error)
}

func (f *fakeTokenService) Issue(subjectID uuid.UUID) (string, error) {
	return f.issueFn(subjectID)
}

func (f *fakeTokenService) Verify(token string) (*service.Claims, error) {
	return f.verifyFn(token)
}

type fakeIDGenerator struct {
	ids []uuid.UUID
}

func (f *fakeIDGenerator) NewID() uuid.UUID {
	if len(f.ids) == 0 {
		return uuid.New()
	}
	id := f.ids[0]
	f.ids = f.ids[1:]

	return id
}

type fakeQRCodeService struct {
	generateFn func(recipeID uuid.UUID) ([]byte, error)
	parseFn    func(qrData string) (uuid.UUID, error)
}

func (f *fakeQRCodeService) GenerateRecipeQR(recipeID uuid.UUID) ([]byte, error) {
	return f.generateFn(recipeID)
}

func (f *fakeQRCodeService) ParseRecipeQR(qrData string) (uuid.UUID, error) {
	return f.parseFn(qrData)
}
