package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/vigiehq/vigie-backend/usecases"
)

type Option func(*options)

type options struct {
	localTest bool
}

// WithLocalTest binds the server to localhost only.
func WithLocalTest(localTest bool) Option {
	return func(o *options) {
		o.localTest = localTest
	}
}

func NewServer(
	router *gin.Engine,
	conf Configuration,
	uc usecases.Usecases,
	opts ...Option,
) *http.Server {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	addRoutes(router, uc)

	host := "0.0.0.0"
	if o.localTest {
		host = "localhost"
	}

	// Refreshes can outlast a screening by far; the margin lets handlers
	// time out in our code before the server cuts the connection.
	maxTimeout := max(conf.RefreshTimeout, conf.DefaultTimeout) + 5*time.Second

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%s", host, conf.Port),
		WriteTimeout: maxTimeout,
		ReadTimeout:  maxTimeout,
		IdleTimeout:  maxTimeout,
		Handler:      h2c.NewHandler(router, &http2.Server{}),
	}
}
