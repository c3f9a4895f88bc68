package main

// General API documentation for swaggo. Run `swag init -g cmd/llmgateway/docs.go -o internal/apidocs` to regenerate.
//
// @title           llmgateway API
// @version         1.0
// @description     HTTP gateway routing code-assistant tasks to local language models.
//
// @contact.name   llmgateway maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
