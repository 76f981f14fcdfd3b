package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/board": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Снимок доски объявлений",
                "parameters": [
                    {"type": "string", "description": "Поисковый запрос", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/board/query": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Изменить поисковый запрос",
                "parameters": [
                    {"description": "Поисковый запрос", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SearchQueryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/properties": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "Список объявлений",
                "parameters": [
                    {"type": "string", "description": "Поисковый запрос", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "Создать объявление",
                "parameters": [
                    {"description": "Объявление", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PropertyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/properties/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "Детали объявления",
                "parameters": [
                    {"type": "string", "description": "ID объявления", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "Сохранить изменения объявления",
                "parameters": [
                    {"type": "string", "description": "ID объявления", "name": "id", "in": "path", "required": true},
                    {"description": "Объявление", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PropertyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "Удалить объявление",
                "parameters": [
                    {"type": "string", "description": "ID объявления", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Подтверждение удаления", "name": "confirm", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "428": {"description": "Precondition Required", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/selection": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Selection"],
                "summary": "Текущий выбор",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Selection"],
                "summary": "Закрыть панель деталей",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/v1/selection/list/{id}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Selection"],
                "summary": "Выбор из списка",
                "parameters": [
                    {"type": "string", "description": "ID объявления", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/selection/map/{id}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Selection"],
                "summary": "Выбор с карты",
                "parameters": [
                    {"type": "string", "description": "ID объявления", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/map": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Состояние карты",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/v1/map/loader": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Статус загрузки скрипта карты",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/v1/map/markers/{markerId}/click": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Клик по маркеру",
                "parameters": [
                    {"type": "string", "description": "ID маркера", "name": "markerId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.PropertyRequest": {
            "type": "object",
            "required": ["address", "area", "price", "property_type", "title", "transaction_type"],
            "properties": {
                "title": {"type": "string"},
                "address": {"type": "string"},
                "property_type": {"type": "string", "enum": ["apartment", "officetel", "villa", "house", "commercial"]},
                "transaction_type": {"type": "string", "enum": ["sale", "rent", "monthly-rent"]},
                "price": {"type": "integer", "minimum": 0},
                "deposit": {"type": "integer", "minimum": 0},
                "monthly_rent": {"type": "integer", "minimum": 0},
                "area": {"type": "number", "minimum": 0},
                "floor": {"type": "string"},
                "description": {"type": "string"},
                "lat": {"type": "number", "maximum": 90, "minimum": -90},
                "lng": {"type": "number", "maximum": 180, "minimum": -180}
            }
        },
        "dto.SearchQueryRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "maxLength": 200}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "result_count": {"type": "integer"},
                "query": {"type": "string"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Real Estate Listing Manager API",
	Description:      "Доска объявлений о недвижимости: список, карта, выбор и панель деталей.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
