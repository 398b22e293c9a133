package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("invalid parameters")
	ErrUnauthenticated       = errors.New("unauthorized")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserExist             = errors.New("user with that email or username already exists")
	ErrUsernameExist         = errors.New("username already taken")
	ErrPasswordIncorrect     = errors.New("incorrect password")
	ErrPlatformNotConfigured = errors.New("platform not configured")
	ErrPlatformExist         = errors.New("platform already exists")
	ErrAccountNotConnected   = errors.New("account not connected")
	ErrAccountAlreadyLinked  = errors.New("account already connected")
	ErrPostNotFound          = errors.New("post not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	UnExpectedError          = errors.New("internal error, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrUnauthenticated:       Unauthorized,
	ErrUserNotFound:          NotFound,
	ErrUserExist:             BadRequest,
	ErrUsernameExist:         BadRequest,
	ErrPasswordIncorrect:     Unauthorized,
	ErrPlatformNotConfigured: NotFound,
	ErrPlatformExist:         BadRequest,
	ErrAccountNotConnected:   NotFound,
	ErrAccountAlreadyLinked:  BadRequest,
	ErrPostNotFound:          NotFound,
	ErrNotificationNotFound:  NotFound,
	UnExpectedError:          InternalServerError,
}
