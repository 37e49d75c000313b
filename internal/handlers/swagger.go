package handlers

// @title Function App API
// @version 1.0
// @description HTTP-triggered functions: a greeting endpoint and a CSV summary endpoint

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7071
// @BasePath /api

// @securityDefinitions.apikey FunctionKey
// @in header
// @name x-functions-key
// @description Function key; may also be passed as the "code" query parameter.

// @tag.name functions
// @tag.description HTTP-triggered functions
