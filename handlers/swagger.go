package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRoutes) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>flyambition-api Swagger</title>
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

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "flyambition-api", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Testimonial": { "type": "object", "properties": {
        "_id": {"type":"string"}, "author": {"type":"string"}, "role": {"type":"string"},
        "country": {"type":"string"}, "text": {"type":"string"}, "type": {"type":"string"},
        "image": {"type":"string"}, "createdAt": {"type":"string","format":"date-time"},
        "updatedAt": {"type":"string","format":"date-time"} } },
      "TestimonialForm": { "type": "object", "properties": {
        "author": {"type":"string"}, "role": {"type":"string"}, "country": {"type":"string"},
        "text": {"type":"string"}, "type": {"type":"string"}, "image": {"type":"string","format":"binary"} } },
      "Error": { "type": "object", "properties": { "success": {"type":"boolean"}, "error": {"type":"string"} } }
    }
  },
  "paths": {
    "/api/testimonials": {
      "get": { "summary": "List testimonials", "responses": { "200": { "description": "all testimonials in storage order" }, "500": { "description": "storage failure" } } },
      "post": {
        "summary": "Create testimonial (author, role, country, text required; optional image)",
        "requestBody": { "content": { "multipart/form-data": { "schema": { "$ref": "#/components/schemas/TestimonialForm" } } } },
        "responses": { "200": { "description": "created testimonial" }, "400": { "description": "missing fields" }, "413": { "description": "upload too large" }, "500": { "description": "storage failure" } }
      }
    },
    "/api/testimonials/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ],
      "get": { "summary": "Get testimonial", "responses": { "200": { "description": "testimonial" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } },
      "put": {
        "summary": "Update testimonial; omitted fields keep their value",
        "requestBody": { "content": { "multipart/form-data": { "schema": { "$ref": "#/components/schemas/TestimonialForm" } } } },
        "responses": { "200": { "description": "updated testimonial" }, "400": { "description": "invalid id" }, "404": { "description": "not found" }, "413": { "description": "upload too large" } }
      },
      "delete": { "summary": "Delete testimonial and its image", "responses": { "200": { "description": "deleted" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } }
    },
    "/send-form": {
      "post": {
        "summary": "Submit employment form (name, email, mobile required)",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object", "required": ["name","email","mobile"], "additionalProperties": true } } } },
        "responses": { "200": { "description": "saved and email sent" }, "400": { "description": "missing fields" }, "500": { "description": "save or email failure" } }
      }
    },
    "/submissions": { "get": { "summary": "List employment submissions", "responses": { "200": { "description": "submissions" } } } },
    "/send-education-form": {
      "post": {
        "summary": "Submit education form (name, email, phone required)",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object", "required": ["name","email","phone"], "additionalProperties": true } } } },
        "responses": { "200": { "description": "saved and email sent" }, "400": { "description": "missing fields" }, "500": { "description": "save or email failure" } }
      }
    },
    "/apply-education": { "get": { "summary": "List education submissions", "responses": { "200": { "description": "submissions" } } } },
    "/": { "get": { "summary": "Liveness message", "responses": { "200": { "description": "plain text" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
