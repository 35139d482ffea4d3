package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/demodash/docs.go`.
//
// @title           demodash API
// @version         1.0
// @description     Dashboard that embeds a hosted demo and forwards prompts to its predict endpoint.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
