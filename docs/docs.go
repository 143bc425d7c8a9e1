// Package docs contiene la especificación OpenAPI del API JSON, servida en /swagger/doc.json.
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
        "/api/breed/{sheep1ID}/{sheep2ID}": {
            "get": {
                "description": "Distribución de fenotipo por categoría para una cría de (sheep1, sheep2). El orden del par se respeta.",
                "produces": ["application/json"],
                "tags": ["breeding"],
                "summary": "Predecir fenotipo de la cría",
                "parameters": [
                    {"type": "integer", "description": "ID de la primera oveja", "name": "sheep1ID", "in": "path", "required": true},
                    {"type": "integer", "description": "ID de la segunda oveja", "name": "sheep2ID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sheep.PredictionView"}},
                    "400": {"description": "ids inválidos", "schema": {"type": "string"}},
                    "404": {"description": "sheep not found", "schema": {"type": "string"}},
                    "502": {"description": "backend unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/api/relationships": {
            "get": {
                "description": "Parejas registradas, ordenadas por id, con la cantidad de crías.",
                "produces": ["application/json"],
                "tags": ["breeding"],
                "summary": "Listar relaciones",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/breeding.relationshipResponse"}}},
                    "502": {"description": "backend unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/api/sheep": {
            "get": {
                "description": "Devuelve id y nombre de cada oveja registrada en el backend. Sin nombre => \"(unnamed)\".",
                "produces": ["application/json"],
                "tags": ["sheep"],
                "summary": "Listar ovejas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/sheep.sheepSummaryResponse"}}},
                    "502": {"description": "backend unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/api/sheep/preview": {
            "post": {
                "description": "Convierte los campos del formulario de alta en el JSON que se enviaría al backend, sin enviarlo.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["sheep"],
                "summary": "Previsualizar alta de oveja",
                "parameters": [
                    {"type": "string", "description": "Nombre; vacío => null", "name": "name", "in": "formData"},
                    {"type": "string", "description": "ID de relación padre; entero", "name": "parentRelationshipId", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sheep.CreateRequest"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}}
                }
            }
        },
        "/api/sheep/{sheepID}": {
            "get": {
                "description": "Devuelve la oveja ya formateada: genotipos y distribuciones PRIOR/INFERRED como porcentajes en orden fijo.",
                "produces": ["application/json"],
                "tags": ["sheep"],
                "summary": "Ver oveja",
                "parameters": [
                    {"type": "integer", "description": "ID de la oveja", "name": "sheepID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sheep.SheepView"}},
                    "404": {"description": "sheep not found", "schema": {"type": "string"}},
                    "502": {"description": "backend unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/api/sheep/{sheepID}/family": {
            "get": {
                "description": "Padres (vacío si no tiene registrados), hijos y parejas de la oveja.",
                "produces": ["application/json"],
                "tags": ["sheep"],
                "summary": "Ver familia de una oveja",
                "parameters": [
                    {"type": "integer", "description": "ID de la oveja", "name": "sheepID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sheep.familyResponse"}},
                    "404": {"description": "sheep not found", "schema": {"type": "string"}},
                    "502": {"description": "backend unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/api/ui/sections": {
            "get": {
                "description": "Qué secciones de distribución (SWIM..STAMINA) del alta están abiertas para la sesión actual.",
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Estado de secciones del formulario",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/uistate.sectionsResponse"}},
                    "401": {"description": "no session", "schema": {"type": "string"}}
                }
            }
        },
        "/api/ui/sections/{category}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Abrir/cerrar una sección",
                "parameters": [
                    {"type": "string", "description": "Categoría (SWIM, FLY, RUN, POWER, STAMINA)", "name": "category", "in": "path", "required": true},
                    {"description": "Nuevo estado", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/uistate.setSectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/uistate.sectionsResponse"}},
                    "400": {"description": "invalid json / categoría desconocida", "schema": {"type": "string"}},
                    "401": {"description": "no session", "schema": {"type": "string"}},
                    "409": {"description": "estado cambiado por otro request", "schema": {"type": "string"}}
                }
            }
        },
        "/api/ui/sections/{category}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Invertir una sección",
                "parameters": [
                    {"type": "string", "description": "Categoría (SWIM, FLY, RUN, POWER, STAMINA)", "name": "category", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/uistate.sectionsResponse"}},
                    "400": {"description": "categoría desconocida", "schema": {"type": "string"}},
                    "401": {"description": "no session", "schema": {"type": "string"}},
                    "409": {"description": "estado cambiado por otro request", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "breeding.relationshipResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "offspring": {"type": "integer"},
                "parent1Id": {"type": "integer"},
                "parent2Id": {"type": "integer"}
            }
        },
        "sheep.CategoryView": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "hasInferred": {"type": "boolean"},
                "hasPrior": {"type": "boolean"},
                "hiddenAllele": {"type": "string"},
                "inferred": {"$ref": "#/definitions/sheep.DistributionRow"},
                "phenotype": {"type": "string"},
                "prior": {"$ref": "#/definitions/sheep.DistributionRow"}
            }
        },
        "sheep.CreateRequest": {
            "type": "object",
            "properties": {
                "distributions": {
                    "type": "object",
                    "additionalProperties": {"type": "object", "additionalProperties": {"type": "number"}}
                },
                "genotypes": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/sheep.Genotype"}
                },
                "name": {"type": "string"},
                "parentRelationshipId": {"type": "integer"}
            }
        },
        "sheep.DistributionRow": {
            "type": "object",
            "properties": {
                "cells": {"type": "array", "items": {"$ref": "#/definitions/sheep.GradeCell"}},
                "normalized": {"type": "boolean"},
                "total": {"type": "string"}
            }
        },
        "sheep.Genotype": {
            "type": "object",
            "properties": {
                "hiddenAllele": {"type": "string"},
                "phenotype": {"type": "string"}
            }
        },
        "sheep.GradeCell": {
            "type": "object",
            "properties": {
                "grade": {"type": "string"},
                "percent": {"type": "string"},
                "probability": {"type": "number"}
            }
        },
        "sheep.PredictionCategoryView": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "distribution": {"$ref": "#/definitions/sheep.DistributionRow"}
            }
        },
        "sheep.PredictionView": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/sheep.PredictionCategoryView"}},
                "sheep1Id": {"type": "integer"},
                "sheep2Id": {"type": "integer"}
            }
        },
        "sheep.SheepView": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/sheep.CategoryView"}},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "named": {"type": "boolean"},
                "parentRelationship": {"type": "string"}
            }
        },
        "sheep.familyResponse": {
            "type": "object",
            "properties": {
                "children": {"type": "array", "items": {"$ref": "#/definitions/sheep.SheepView"}},
                "parents": {"type": "array", "items": {"$ref": "#/definitions/sheep.SheepView"}},
                "partners": {"type": "array", "items": {"$ref": "#/definitions/sheep.SheepView"}},
                "sheep": {"$ref": "#/definitions/sheep.SheepView"}
            }
        },
        "sheep.sheepSummaryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "uistate.sectionResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "expanded": {"type": "boolean"}
            }
        },
        "uistate.sectionsResponse": {
            "type": "object",
            "properties": {
                "sections": {"type": "array", "items": {"$ref": "#/definitions/uistate.sectionResponse"}},
                "version": {"type": "integer"}
            }
        },
        "uistate.setSectionRequest": {
            "type": "object",
            "properties": {
                "expanded": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sheep Breeding Web API",
	Description:      "API JSON del frontend de cría de ovejas: lectura de ovejas, predicción de cruzas y estado de UI.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
