// Package middleware provides HTTP middleware for the API server.
//
// Middlewares compose through Chain and cover request identification,
// structured request logging, panic recovery, CORS, and the session gate
// protecting the back-office routes.
package middleware
