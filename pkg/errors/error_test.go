package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("invalid parameter", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeTickerNotFound, "ticker %s not found", "ZZZZ")
	suite.NotNil(err)
	suite.Equal(ErrCodeTickerNotFound, err.Code)
	suite.Equal("ticker ZZZZ not found", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeProviderFailed, "provider request failed", cause)
	suite.NotNil(err)
	suite.Equal(ErrCodeProviderFailed, err.Code)
	suite.Equal("provider request failed", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("underlying error")
	err := Wrapf(ErrCodeProviderFailed, cause, "provider request failed for ticker: %s", "AAPL")
	suite.NotNil(err)
	suite.Equal(ErrCodeProviderFailed, err.Code)
	suite.Equal("provider request failed for ticker: AAPL", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Equal("[100] invalid parameter", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeTickerNotFound, "ticker not found", cause)
	suite.Equal("[200] ticker not found: underlying error", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeProviderFailed, "provider request failed", cause)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestUnwrapNil() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Nil(err.Unwrap())
}

func (suite *ErrorTestSuite) TestGetCode() {
	err := New(ErrCodeInvalidWindow, "window must be positive")
	suite.Equal(ErrCodeInvalidWindow, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromWrapped() {
	cause := New(ErrCodeProviderFailed, "provider request failed")
	err := Wrap(ErrCodeTickerNotFound, "ticker not found", cause)
	// GetCode should return the outermost error's code
	suite.Equal(ErrCodeTickerNotFound, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromPlainError() {
	err := errors.New("standard error")
	suite.Equal(ErrCodeUnknown, GetCode(err))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeEmptySeries, "series is empty")
	suite.True(HasCode(err, ErrCodeEmptySeries))
	suite.False(HasCode(err, ErrCodeTickerNotFound))
}

func (suite *ErrorTestSuite) TestIsError() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeProviderFailed, "provider request failed", cause)
	suite.True(Is(err, cause))
}

func (suite *ErrorTestSuite) TestAsError() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	var typed *Error
	suite.True(As(err, &typed))
	suite.Equal(ErrCodeInvalidParameter, typed.Code)
}

func (suite *ErrorTestSuite) TestErrorCodeValues() {
	// Verify some key error codes have expected values
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(102), ErrCodeInvalidDateRange)
	suite.Equal(ErrorCode(103), ErrCodeInvalidWindow)
	suite.Equal(ErrorCode(200), ErrCodeTickerNotFound)
	suite.Equal(ErrorCode(201), ErrCodeEmptySeries)
	suite.Equal(ErrorCode(300), ErrCodeProviderFailed)
}
