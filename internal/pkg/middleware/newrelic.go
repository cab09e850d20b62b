package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports an error to New Relic
func NoticeError(c echo.Context, err error) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}
}

func SetUserID(c echo.Context, userID string) {
	AddAttribute(c, "user.id", userID)
}

func SetLoanID(c echo.Context, loanID string) {
	AddAttribute(c, "loan.id", loanID)
}

func SetQueryID(c echo.Context, queryID string) {
	AddAttribute(c, "query.id", queryID)
}
