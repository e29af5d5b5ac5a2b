package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrDogNotFound      = errors.New("dog not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrMessageNotFound  = errors.New("message not found")
	ErrPlaydateNotFound = errors.New("playdate not found")
	ErrRatingNotFound   = errors.New("rating not found")

	ErrPermissionDenied = errors.New("permission denied")

	// 冲突类
	ErrMatchExists  = errors.New("a match already exists between these dogs")
	ErrAlreadyRated = errors.New("already rated this dog for this playdate")

	// 状态类
	ErrMatchNotActive       = errors.New("match is not active")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrPlaydateNotCompleted = errors.New("playdate not completed")
	ErrSelfMatch            = errors.New("cannot match a dog with itself")
	ErrDogNotInPlaydate     = errors.New("the rated dog is not part of this playdate")
)
