package api

import "time"

type Configuration struct {
	Env     string
	AppName string
	Port    string

	// AppUrl is the origin of the compliance front end, allowed through CORS.
	AppUrl string

	DefaultTimeout time.Duration
	// RefreshTimeout bounds a synchronous watchlist refresh, which parses
	// every source document before answering.
	RefreshTimeout time.Duration
}
