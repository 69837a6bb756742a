package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"task-tracker-backend/internal/auth"
	"task-tracker-backend/internal/database/models"
	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/mocks"
	"task-tracker-backend/internal/service"
	"task-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityServiceTestSuite defines the test suite for IdentityService
type IdentityServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ctx           context.Context
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockTokens    *mocks.MockSessionTokens
	mockCaptcha   *mocks.MockCaptchaVerifier
	mockFederated *mocks.MockFederatedVerifier
	mockImages    *mocks.MockImageStore
	service       *service.IdentityService
	users         *testutils.UserFactory
}

// SetupTest sets up the test suite
func (suite *IdentityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTokens = mocks.NewMockSessionTokens(suite.ctrl)
	suite.mockCaptcha = mocks.NewMockCaptchaVerifier(suite.ctrl)
	suite.mockFederated = mocks.NewMockFederatedVerifier(suite.ctrl)
	suite.mockImages = mocks.NewMockImageStore(suite.ctrl)
	suite.users = testutils.NewUserFactory()
	suite.service = service.NewIdentityService(
		suite.mockUserRepo,
		suite.mockTokens,
		nil,
		suite.mockFederated,
		suite.mockImages,
		service.NewValidator(),
	)
}

// TearDownTest cleans up after each test
func (suite *IdentityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IdentityServiceTestSuite) withCaptcha() *service.IdentityService {
	return service.NewIdentityService(
		suite.mockUserRepo,
		suite.mockTokens,
		suite.mockCaptcha,
		suite.mockFederated,
		suite.mockImages,
		service.NewValidator(),
	)
}

func (suite *IdentityServiceTestSuite) TestRegister_Success() {
	req := &service.RegisterRequest{FullName: " Ann Lee ", Username: "ann", Password: "pw"}

	suite.mockUserRepo.EXPECT().ExistsByUsername("ann").Return(false, nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal("ann", user.Username)
		suite.Equal("Ann Lee", user.FullName)
		suite.NotEqual("pw", user.PasswordHash)
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw")))
		suite.Nil(user.ProfileImage)
		user.ID = uuid.New()
		return nil
	})

	summary, err := suite.service.Register(suite.ctx, req, nil)

	suite.NoError(err)
	suite.Equal("ann", summary.Username)
	suite.Equal("Ann Lee", summary.FullName)
}

func (suite *IdentityServiceTestSuite) TestRegister_WithImage() {
	req := &service.RegisterRequest{FullName: "Ann", Username: "ann", Password: "pw"}
	image := &multipart.FileHeader{Filename: "me.png", Size: 10}

	suite.mockUserRepo.EXPECT().ExistsByUsername("ann").Return(false, nil)
	suite.mockImages.EXPECT().Save(image).Return("/uploads/abc.png", nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(nil)

	summary, err := suite.service.Register(suite.ctx, req, image)

	suite.NoError(err)
	suite.Require().NotNil(summary.ProfileImage)
	suite.Equal("/uploads/abc.png", *summary.ProfileImage)
}

func (suite *IdentityServiceTestSuite) TestRegister_MissingFields() {
	testCases := []*service.RegisterRequest{
		{Username: "ann", Password: "pw"},
		{FullName: "Ann", Password: "pw"},
		{FullName: "Ann", Username: "ann"},
		{FullName: "   ", Username: "ann", Password: "pw"},
	}

	for _, req := range testCases {
		_, err := suite.service.Register(suite.ctx, req, nil)
		suite.True(apperrors.IsValidation(err))
		suite.Equal("Missing fields", apperrors.PublicMessage(err))
	}
}

func (suite *IdentityServiceTestSuite) TestRegister_UsernameTaken() {
	suite.mockUserRepo.EXPECT().ExistsByUsername("ann").Return(true, nil)

	_, err := suite.service.Register(suite.ctx, &service.RegisterRequest{FullName: "Ann", Username: "ann", Password: "pw"}, nil)

	suite.ErrorIs(err, apperrors.ErrUsernameExists)
}

func (suite *IdentityServiceTestSuite) TestRegister_ConcurrentDuplicateRemovesImage() {
	image := &multipart.FileHeader{Filename: "me.png", Size: 10}

	suite.mockUserRepo.EXPECT().ExistsByUsername("ann").Return(false, nil)
	suite.mockImages.EXPECT().Save(image).Return("/uploads/abc.png", nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)
	suite.mockImages.EXPECT().Remove("/uploads/abc.png").Return(nil)

	_, err := suite.service.Register(suite.ctx, &service.RegisterRequest{FullName: "Ann", Username: "ann", Password: "pw"}, image)

	suite.ErrorIs(err, apperrors.ErrUsernameExists)
}

func (suite *IdentityServiceTestSuite) TestRegister_UnsupportedImage() {
	image := &multipart.FileHeader{Filename: "notes.txt", Size: 10}

	suite.mockUserRepo.EXPECT().ExistsByUsername("ann").Return(false, nil)
	suite.mockImages.EXPECT().Save(image).Return("", apperrors.ErrUnsupportedImage)

	_, err := suite.service.Register(suite.ctx, &service.RegisterRequest{FullName: "Ann", Username: "ann", Password: "pw"}, image)

	suite.ErrorIs(err, apperrors.ErrUnsupportedImage)
}

func (suite *IdentityServiceTestSuite) TestLogin_Success() {
	user := suite.users.WithUsername("ann")

	suite.mockUserRepo.EXPECT().GetByUsername("ann").Return(user, nil)
	suite.mockTokens.EXPECT().Issue(user.ID, "ann").Return("signed-token", nil)

	session, err := suite.service.Login(suite.ctx, &service.LoginRequest{Username: "ann", Password: testutils.TestPassword}, "127.0.0.1")

	suite.NoError(err)
	suite.Equal("Login Successful", session.Message)
	suite.Equal("signed-token", session.Token)
	suite.Equal(user.ID, session.User.ID)
}

func (suite *IdentityServiceTestSuite) TestLogin_WrongPasswordAndUnknownUserLookAlike() {
	user := suite.users.WithUsername("ann")

	suite.mockUserRepo.EXPECT().GetByUsername("ann").Return(user, nil)
	_, wrongPassword := suite.service.Login(suite.ctx, &service.LoginRequest{Username: "ann", Password: "nope"}, "")

	suite.mockUserRepo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)
	_, unknownUser := suite.service.Login(suite.ctx, &service.LoginRequest{Username: "ghost", Password: "nope"}, "")

	suite.ErrorIs(wrongPassword, apperrors.ErrInvalidCredentials)
	suite.ErrorIs(unknownUser, apperrors.ErrInvalidCredentials)
	suite.Equal(apperrors.PublicMessage(wrongPassword), apperrors.PublicMessage(unknownUser))
}

func (suite *IdentityServiceTestSuite) TestLogin_FederatedOnlyUserRejected() {
	user := suite.users.Federated("google-sub-1")

	suite.mockUserRepo.EXPECT().GetByUsername(user.Username).Return(user, nil)

	_, err := suite.service.Login(suite.ctx, &service.LoginRequest{Username: user.Username, Password: models.FederatedPasswordSentinel}, "")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *IdentityServiceTestSuite) TestLogin_MissingFields() {
	_, err := suite.service.Login(suite.ctx, &service.LoginRequest{Username: "ann"}, "")

	suite.True(apperrors.IsValidation(err))
	suite.Equal("Missing fields", apperrors.PublicMessage(err))
}

func (suite *IdentityServiceTestSuite) TestLogin_Captcha() {
	svc := suite.withCaptcha()

	suite.Run("rejected before credentials are checked", func() {
		suite.mockCaptcha.EXPECT().Verify(gomock.Any(), "bad", "10.0.0.1").Return(apperrors.ErrCaptchaFailed)

		_, err := svc.Login(suite.ctx, &service.LoginRequest{Username: "ann", Password: "pw", RecaptchaToken: "bad"}, "10.0.0.1")

		suite.ErrorIs(err, apperrors.ErrCaptchaFailed)
	})

	suite.Run("provider outage is not a client error", func() {
		suite.mockCaptcha.EXPECT().Verify(gomock.Any(), "tok", "").Return(errors.New("dial tcp: timeout"))

		_, err := svc.Login(suite.ctx, &service.LoginRequest{Username: "ann", Password: "pw", RecaptchaToken: "tok"}, "")

		suite.Error(err)
		suite.False(apperrors.IsValidation(err))
	})

	suite.Run("passes", func() {
		user := suite.users.WithUsername("ann")
		suite.mockCaptcha.EXPECT().Verify(gomock.Any(), "ok", "").Return(nil)
		suite.mockUserRepo.EXPECT().GetByUsername("ann").Return(user, nil)
		suite.mockTokens.EXPECT().Issue(user.ID, "ann").Return("t", nil)

		_, err := svc.Login(suite.ctx, &service.LoginRequest{Username: "ann", Password: testutils.TestPassword, RecaptchaToken: "ok"}, "")

		suite.NoError(err)
	})
}

func (suite *IdentityServiceTestSuite) TestFederatedLogin_ProvisionsNewUser() {
	identity := &auth.GoogleIdentity{Subject: "1234567890", Email: "ann@example.com", Name: "Ann Lee", Picture: "https://img/ann.png"}

	suite.mockFederated.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return(identity, nil)
	suite.mockUserRepo.EXPECT().GetByGoogleID("1234567890").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().ExistsByUsername("Ann Lee").Return(true, nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal("Ann Lee-567890", user.Username)
		suite.Equal("Ann Lee", user.FullName)
		suite.True(user.IsFederatedOnly())
		suite.Equal("1234567890", *user.GoogleID)
		suite.Equal("https://img/ann.png", *user.ProfileImage)
		user.ID = uuid.New()
		return nil
	})
	suite.mockTokens.EXPECT().Issue(gomock.Any(), "Ann Lee-567890").Return("t", nil)

	session, err := suite.service.FederatedLogin(suite.ctx, &service.FederatedLoginRequest{Token: "id-token"})

	suite.NoError(err)
	suite.Equal("Google login successful", session.Message)
	suite.Equal("Ann Lee-567890", session.User.Username)
}

func (suite *IdentityServiceTestSuite) TestFederatedLogin_ExistingUserBackfillsAvatar() {
	user := suite.users.Federated("sub-1")
	identity := &auth.GoogleIdentity{Subject: "sub-1", Picture: "https://img/p.png"}

	suite.mockFederated.EXPECT().ExchangeCode(gomock.Any(), "auth-code").Return(identity, nil)
	suite.mockUserRepo.EXPECT().GetByGoogleID("sub-1").Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)
	suite.mockTokens.EXPECT().Issue(user.ID, user.Username).Return("t", nil)

	session, err := suite.service.FederatedLogin(suite.ctx, &service.FederatedLoginRequest{Code: "auth-code"})

	suite.NoError(err)
	suite.Equal("https://img/p.png", *session.User.ProfileImage)
}

func (suite *IdentityServiceTestSuite) TestFederatedLogin_Failures() {
	suite.Run("missing credential", func() {
		_, err := suite.service.FederatedLogin(suite.ctx, &service.FederatedLoginRequest{})
		suite.Equal("Token is required", apperrors.PublicMessage(err))
	})

	suite.Run("provider rejects token", func() {
		suite.mockFederated.EXPECT().VerifyIDToken(gomock.Any(), "forged").Return(nil, apperrors.ErrFederatedAuth)
		_, err := suite.service.FederatedLogin(suite.ctx, &service.FederatedLoginRequest{Token: "forged"})
		suite.ErrorIs(err, apperrors.ErrFederatedAuth)
	})
}

func (suite *IdentityServiceTestSuite) TestVerifySession() {
	claims := &auth.AuthClaims{UserID: uuid.New(), Username: "ann"}

	suite.mockTokens.EXPECT().Verify("good").Return(claims, nil)
	got, err := suite.service.VerifySession("good")
	suite.NoError(err)
	suite.Equal(claims, got)

	suite.mockTokens.EXPECT().Verify("bad").Return(nil, auth.ErrTokenInvalid)
	_, err = suite.service.VerifySession("bad")
	suite.ErrorIs(err, apperrors.ErrInvalidToken)

	_, err = suite.service.VerifySession("")
	suite.ErrorIs(err, apperrors.ErrMissingToken)
}

func (suite *IdentityServiceTestSuite) TestGetProfile() {
	user := suite.users.WithUsername("ann")

	suite.mockUserRepo.EXPECT().GetByUsername("ann").Return(user, nil)
	profile, err := suite.service.GetProfile("ann")
	suite.NoError(err)
	suite.Equal(user.FullName, profile.FullName)

	suite.mockUserRepo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.service.GetProfile("ghost")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *IdentityServiceTestSuite) TestUpdateProfile_ReplacesImage() {
	user := suite.users.Create()
	old := "/uploads/old.png"
	user.ProfileImage = &old
	image := &multipart.FileHeader{Filename: "new.png", Size: 10}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockImages.EXPECT().Save(image).Return("/uploads/new.png", nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)
	suite.mockImages.EXPECT().Remove("/uploads/old.png").Return(nil)

	profile, err := suite.service.UpdateProfile(suite.ctx, user.ID, &service.UpdateProfileRequest{FullName: "New Name"}, image)

	suite.NoError(err)
	suite.Equal("New Name", profile.FullName)
	suite.Equal("/uploads/new.png", *profile.ProfileImage)
}

func (suite *IdentityServiceTestSuite) TestUpdateProfile_NameOnlyKeepsImage() {
	user := suite.users.Create()
	old := "/uploads/old.png"
	user.ProfileImage = &old

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)

	profile, err := suite.service.UpdateProfile(suite.ctx, user.ID, &service.UpdateProfileRequest{FullName: "New Name"}, nil)

	suite.NoError(err)
	suite.Equal("/uploads/old.png", *profile.ProfileImage)
}

func (suite *IdentityServiceTestSuite) TestUpdateProfile_FullNameRequired() {
	_, err := suite.service.UpdateProfile(suite.ctx, uuid.New(), &service.UpdateProfileRequest{FullName: "  "}, nil)

	suite.Equal("Full name is required", apperrors.PublicMessage(err))
}

func (suite *IdentityServiceTestSuite) TestListUsers() {
	a := suite.users.WithUsername("alice")
	b := suite.users.WithUsername("bob")
	suite.mockUserRepo.EXPECT().GetAll().Return([]models.User{*a, *b}, nil)

	items, err := suite.service.ListUsers()

	suite.NoError(err)
	suite.Len(items, 2)
	suite.Equal("alice", items[0].Username)
	suite.Equal(b.ID, items[1].ID)
}

// TestIdentityServiceTestSuite runs the test suite
func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}
