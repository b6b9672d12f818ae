package authhandler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"recruiting-dashboard-backend/config"
	"recruiting-dashboard-backend/db"
	usersstore "recruiting-dashboard-backend/lib/users/store"
	authutils "recruiting-dashboard-backend/lib/utils/auth-utils"
	initchecker "recruiting-dashboard-backend/lib/utils/init-checker"
	"recruiting-dashboard-backend/middleware"
	authapimodels "recruiting-dashboard-backend/models/api/auth"
	dbmodels "recruiting-dashboard-backend/models/db"
)

type Provider interface {
	Login(email, password string) (resp authapimodels.JWTResponse, err error)
	Me(ctx *fiber.Ctx) (resp authapimodels.UserView, err error)
	RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error)
	CreateUser(data authapimodels.CreateUserRequest) (id string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Login(email, password string) (resp authapimodels.JWTResponse, err error) {
	rec, err := i.usersStore.FindByEmail(email)
	if err != nil {
		return resp, err
	}
	if rec == nil || !rec.IsActive {
		return resp, errors.New("invalid credentials")
	}
	if rec.PasswordHash != authutils.GetMD5Hash(password) {
		return resp, errors.New("invalid credentials")
	}
	return i.issueTokens(*rec)
}

func (i impl) Me(ctx *fiber.Ctx) (resp authapimodels.UserView, err error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return resp, errors.New("no user in token")
	}
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return resp, err
	}
	if rec == nil {
		return resp, errors.New("user not found")
	}
	return authapimodels.UserView{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Role:      rec.Role,
		RoleName:  rec.Role.ToHuman(),
	}, nil
}

func (i impl) RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return resp, errors.New("invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return resp, errors.New("invalid refresh token")
	}
	userID, _ := claims["sub"].(string)
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return resp, err
	}
	if rec == nil || !rec.IsActive {
		return resp, errors.New("user not found")
	}
	return i.issueTokens(*rec)
}

func (i impl) CreateUser(data authapimodels.CreateUserRequest) (id string, err error) {
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.New("email already registered")
	}
	rec := dbmodels.DashboardUser{
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: authutils.GetMD5Hash(data.Password),
		Role:         data.Role,
		IsActive:     true,
	}
	rec.ID = uuid.NewString()
	return i.usersStore.Create(rec)
}

func (i impl) issueTokens(rec dbmodels.DashboardUser) (resp authapimodels.JWTResponse, err error) {
	accessToken, err := authutils.GetToken(rec.ID, rec.FullName(), rec.Role)
	if err != nil {
		return resp, errors.Wrap(err, "access token signing failed")
	}
	refreshToken, err := authutils.GetRefreshToken(rec.ID, rec.FullName())
	if err != nil {
		return resp, errors.Wrap(err, "refresh token signing failed")
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
