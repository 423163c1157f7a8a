package middleware

import (
	"sync"

	"github.com/heartmarshall/expensio-backend/internal/domain"
)

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	VerifyFunc func(token string) (domain.Actor, error)

	calls struct {
		Verify []struct {
			Token string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *tokenVerifierMock) Verify(token string) (domain.Actor, error) {
	if mock.VerifyFunc == nil {
		panic("tokenVerifierMock.VerifyFunc: method is nil but tokenVerifier.Verify was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(token)
}

func (mock *tokenVerifierMock) VerifyCalls() []struct{ Token string } {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
