package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrTestNotFound        = errors.New("test not found")
	ErrTestNotInDomain     = errors.New("test not available for student's domain")
	ErrTestAlreadyTaken    = errors.New("test already taken")
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrAttemptFinished     = errors.New("attempt already finished")
	ErrUnansweredQuestions = errors.New("all questions must be answered before submitting")
	ErrQuestionIndex       = errors.New("question index out of range")
	ErrNotEligible         = errors.New("student does not meet minimum points requirement")
	ErrQueryNotFound       = errors.New("query not found")
	ErrQueryResolved       = errors.New("query already resolved")
	ErrDomainNotFound      = errors.New("internship domain not found")
	ErrDomainExists        = errors.New("internship domain already exists")
)
