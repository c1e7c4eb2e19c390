package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the backoffice API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>fleet-backoffice — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the main resource surfaces. Kept by
// hand rather than generated; the API is small enough.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "fleet-backoffice", "version": "v0.1.0" },
  "paths": {
    "/api/auth/login": {
      "post": {
        "summary": "Login with email/password",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "token pair returned" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/auth/refresh": {
      "post": { "summary": "Refresh token pair", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refreshToken":{"type":"string"}}}}}}, "responses": { "200": { "description": "new token pair" }, "401": { "description": "invalid refresh" } } }
    },
    "/api/auth/logout": {
      "post": { "summary": "Logout and blacklist access token", "responses": { "200": { "description": "logged out" } } }
    },
    "/api/auth/me": {
      "get": { "summary": "Get authenticated user", "responses": { "200": { "description": "user" }, "401": { "description": "unauthenticated" } } }
    },
    "/api/golf-courses": {
      "get": { "summary": "List golf courses", "responses": { "200": { "description": "paginated list" } } },
      "post": { "summary": "Create a golf course", "responses": { "201": { "description": "created" }, "400": { "description": "validation or duplicate" } } }
    },
    "/api/carts": {
      "get": { "summary": "List carts", "responses": { "200": { "description": "paginated list" } } },
      "post": { "summary": "Register a cart", "responses": { "201": { "description": "created" } } }
    },
    "/api/cart-models": {
      "get": { "summary": "List cart models", "responses": { "200": { "description": "paginated list" } } }
    },
    "/api/maps": {
      "get": { "summary": "List maps", "responses": { "200": { "description": "paginated list" } } }
    },
    "/api/users": {
      "get": { "summary": "List backoffice users", "responses": { "200": { "description": "paginated list" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
