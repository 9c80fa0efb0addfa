package service

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenRevoked        = errors.New("token has been revoked")
	ErrNoImage             = errors.New("no image selected")
	ErrNotAnImage          = errors.New("selected file is not an image")
	ErrImageTooLarge       = errors.New("image exceeds the upload limit")
	ErrLocationRequired    = errors.New("location required")
	ErrEmptyMessage        = errors.New("message is empty")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
