// Package apidocs holds the OpenAPI document for the gateway. Regenerate with
// `swag init -g cmd/llmgateway/docs.go -o internal/apidocs`.
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "llmgateway maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/complete": {
            "post": {
                "summary": "Code completion",
                "tags": [
                    "tasks"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.CompleteRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.CompleteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "description": "Completes code from a prefix. A non-empty suffix switches to fill-in-the-middle."
            }
        },
        "/explain": {
            "post": {
                "summary": "Explain code",
                "tags": [
                    "tasks"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.ExplainRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ExplainResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/refactor": {
            "post": {
                "summary": "Refactor code",
                "tags": [
                    "tasks"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.RefactorRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.RefactorResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reason": {
            "post": {
                "summary": "Domain reasoning",
                "tags": [
                    "tasks"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.ReasonRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ReasonResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/generate": {
            "post": {
                "summary": "Generate code",
                "tags": [
                    "tasks"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.GenerateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.GenerateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/chat": {
            "post": {
                "summary": "Multi-turn chat",
                "tags": [
                    "tasks"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.ChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ReasonResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/preload": {
            "post": {
                "summary": "Preload models",
                "tags": [
                    "models"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/types.PreloadRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.PreloadResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "description": "Loads in-process models. An empty body preloads all of them."
            }
        },
        "/health": {
            "get": {
                "summary": "Gateway health",
                "tags": [
                    "system"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HealthResponse"
                        }
                    }
                },
                "description": "Reports load state of in-process models and daemon availability of remote ones."
            }
        },
        "/models": {
            "get": {
                "summary": "List models",
                "tags": [
                    "models"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ModelsResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "types.ChatMessage": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string",
                    "example": "user"
                },
                "content": {
                    "type": "string",
                    "example": "How do I define a new entity?"
                }
            }
        },
        "types.CompleteRequest": {
            "type": "object",
            "properties": {
                "prefix": {
                    "type": "string",
                    "example": "public int add(int a, int b) {"
                },
                "suffix": {
                    "type": "string",
                    "example": "}"
                },
                "language": {
                    "type": "string",
                    "example": "java"
                },
                "model": {
                    "type": "string",
                    "example": "phind-codellama"
                },
                "max_tokens": {
                    "type": "integer",
                    "example": 200
                }
            }
        },
        "types.CompleteResponse": {
            "type": "object",
            "properties": {
                "completion": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "example": "completion"
                },
                "error_kind": {
                    "type": "string"
                }
            }
        },
        "types.ExplainRequest": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "int x = 1;"
                },
                "language": {
                    "type": "string",
                    "example": "java"
                }
            }
        },
        "types.ExplainResponse": {
            "type": "object",
            "properties": {
                "explanation": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "error_kind": {
                    "type": "string"
                }
            }
        },
        "types.RefactorRequest": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "language": {
                    "type": "string"
                },
                "instructions": {
                    "type": "string",
                    "example": "Extract the validation into a helper method"
                }
            }
        },
        "types.RefactorResponse": {
            "type": "object",
            "properties": {
                "refactored": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "error_kind": {
                    "type": "string"
                }
            }
        },
        "types.ReasonRequest": {
            "type": "object",
            "properties": {
                "question": {
                    "type": "string",
                    "example": "Should order approval run as a SECA or a service group?"
                },
                "context": {
                    "type": "string"
                }
            }
        },
        "types.ReasonResponse": {
            "type": "object",
            "properties": {
                "response": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "error_kind": {
                    "type": "string"
                }
            }
        },
        "types.GenerateRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "example": "A service that archives closed invoices older than a year"
                },
                "language": {
                    "type": "string"
                },
                "framework": {
                    "type": "string",
                    "example": "OFBiz"
                }
            }
        },
        "types.GenerateResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "language": {
                    "type": "string"
                },
                "error_kind": {
                    "type": "string"
                }
            }
        },
        "types.ChatRequest": {
            "type": "object",
            "properties": {
                "messages": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.ChatMessage"
                    }
                },
                "model": {
                    "type": "string",
                    "example": "llama-scout"
                }
            }
        },
        "types.PreloadRequest": {
            "type": "object",
            "properties": {
                "models": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "llama-scout"
                    ]
                }
            }
        },
        "types.PreloadResponse": {
            "type": "object",
            "properties": {
                "results": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "types.ModelInfo": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "example": "in-process"
                },
                "use_case": {
                    "type": "string",
                    "example": "reasoning"
                },
                "loaded": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string",
                    "example": "phind-codellama:34b-v2-fp16"
                }
            }
        },
        "types.ModelsResponse": {
            "type": "object",
            "properties": {
                "models": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/types.ModelInfo"
                    }
                }
            }
        },
        "types.ModelHealth": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "example": "remote-daemon"
                },
                "use_case": {
                    "type": "string",
                    "example": "code_completion"
                },
                "loaded": {
                    "type": "boolean"
                },
                "available": {
                    "type": "boolean"
                }
            }
        },
        "types.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "healthy"
                },
                "in_process_runtime": {
                    "type": "boolean"
                },
                "models": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/types.ModelHealth"
                    }
                }
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Unknown model: gpt-x"
                },
                "code": {
                    "type": "integer",
                    "example": 400
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "llmgateway API",
	Description:      "HTTP gateway routing code-assistant tasks to local language models.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
