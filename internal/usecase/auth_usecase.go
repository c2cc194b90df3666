package usecase

import (
	"context"
	"errors"

	"talentmatch/internal/domain/recruiter"
	"talentmatch/internal/pkg/jwt"
	ucauth "talentmatch/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (recruiter.Recruiter, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (recruiter.Recruiter, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc    *ucauth.Service
	recruiters recruiter.Repository
	jwt        jwt.Service
}

func NewAuthUsecase(recruiters recruiter.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(recruiters), recruiters: recruiters, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (recruiter.Recruiter, string, string, error) {
	rec, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return recruiter.Recruiter{}, "", "", err
	}
	return u.issueTokens(rec)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (recruiter.Recruiter, string, string, error) {
	rec, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return recruiter.Recruiter{}, "", "", err
	}
	return u.issueTokens(rec)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	rec, err := u.recruiters.GetByID(ctx, claims.RecruiterID)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return "", "", ErrUnauthorized
		}
		return "", "", ErrInternal
	}

	_, access, refresh, err := u.issueTokens(rec)
	return access, refresh, err
}

func (u *Auth) issueTokens(rec recruiter.Recruiter) (recruiter.Recruiter, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(rec.ID, rec.Email)
	if err != nil {
		return recruiter.Recruiter{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(rec.ID)
	if err != nil {
		return recruiter.Recruiter{}, "", "", ErrInternal
	}
	return rec, access, refresh, nil
}
