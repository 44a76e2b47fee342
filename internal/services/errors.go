package services

import "errors"

var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrPlanetNotFound   = errors.New("planet not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFavoriteExists   = errors.New("favorite already exists")
)
