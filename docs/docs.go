// Package docs 由 swag 生成的接口文档
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
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"System"
				],
				"summary": "健康检查",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.HealthResponse"
						}
					}
				}
			}
		},
		"/api/auth/register": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "用户注册",
				"parameters": [
					{
						"description": "注册信息",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.RegisterRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/service.AuthResponse"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"409": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/auth/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "用户登录",
				"parameters": [
					{
						"description": "登录信息",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.LoginRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.AuthResponse"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"401": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/auth/verify": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "校验令牌",
				"security": [
					{
						"Bearer": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.VerifyResponse"
						}
					},
					"401": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/profiles": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Profile"
				],
				"summary": "档案列表",
				"security": [
					{
						"Bearer": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Profile"
							}
						}
					},
					"401": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Profile"
				],
				"summary": "创建档案",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"description": "档案名称",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.ProfileRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Profile"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"401": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/profiles/{profileId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Profile"
				],
				"summary": "获取档案",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Profile"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Profile"
				],
				"summary": "重命名档案",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					},
					{
						"description": "新名称",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.ProfileRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Profile"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Profile"
				],
				"summary": "删除档案",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.MessageResponse"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/gamestate/{profileId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"GameState"
				],
				"summary": "获取战斗状态",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.GameState"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"GameState"
				],
				"summary": "更新战斗状态",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					},
					{
						"description": "状态字段",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.GameStateRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.GameState"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/gamestate/{profileId}/reset": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"GameState"
				],
				"summary": "重置战斗",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.GameState"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/gamestate/{profileId}/snapshot": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"GameState"
				],
				"summary": "获取完整快照",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.SnapshotView"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/gamestate/{profileId}/actions": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"GameState"
				],
				"summary": "执行引擎动作",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					},
					{
						"description": "动作",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.ActionRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.SnapshotView"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/spells/{profileId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Spell"
				],
				"summary": "法术书列表",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Spell"
							}
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Spell"
				],
				"summary": "新增法术",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					},
					{
						"description": "法术",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.SpellRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Spell"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/spells/{profileId}/{spellId}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Spell"
				],
				"summary": "删除法术",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "法术ID",
						"name": "spellId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.MessageResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"404": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/ready-to-cast/{profileId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"ReadyToCast"
				],
				"summary": "待施放队列",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.ReadyToCast"
							}
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"ReadyToCast"
				],
				"summary": "加入待施放队列",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					},
					{
						"description": "待施放法术",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.ReadyToCastRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.ReadyToCast"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"ReadyToCast"
				],
				"summary": "清空待施放队列",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.DeletedResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/ready-to-cast/{profileId}/{id}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"ReadyToCast"
				],
				"summary": "移出待施放队列",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "条目ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.MessageResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"404": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/spell-mantain/{profileId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"SpellMaintain"
				],
				"summary": "维持列表",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.SpellMaintain"
							}
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"SpellMaintain"
				],
				"summary": "加入维持列表",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					},
					{
						"description": "维持法术",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.MaintainRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.SpellMaintain"
						}
					},
					"400": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"SpellMaintain"
				],
				"summary": "清空维持列表",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.DeletedResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/spell-mantain/{profileId}/{id}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"SpellMaintain"
				],
				"summary": "移出维持列表",
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "档案ID",
						"name": "profileId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "条目ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.MessageResponse"
						}
					},
					"403": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					},
					"404": {
						"description": "错误",
						"schema": {
							"$ref": "#/definitions/middleware.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"api.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"database": {
					"type": "string"
				},
				"timestamp": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"api.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"api.DeletedResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"deleted": {
					"type": "integer"
				}
			}
		},
		"api.VerifyResponse": {
			"type": "object",
			"properties": {
				"valid": {
					"type": "boolean"
				},
				"user": {
					"$ref": "#/definitions/service.UserInfo"
				}
			}
		},
		"apperrors.FieldError": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"middleware.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"details": {
					"type": "string"
				},
				"fields": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/apperrors.FieldError"
					}
				},
				"request_id": {
					"type": "string"
				}
			}
		},
		"service.UserInfo": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"display_name": {
					"type": "string"
				},
				"last_login_at": {
					"type": "string",
					"format": "date-time"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"service.AuthResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time"
				},
				"user": {
					"$ref": "#/definitions/service.UserInfo"
				}
			}
		},
		"service.RegisterRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"display_name": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"service.LoginRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"service.ProfileRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"service.GameStateRequest": {
			"type": "object",
			"properties": {
				"turn_number": {
					"type": "integer"
				},
				"zeon": {
					"type": "integer"
				},
				"rzeon": {
					"type": "integer"
				},
				"zeona": {
					"type": "integer"
				},
				"act": {
					"type": "integer"
				},
				"rzeoni": {
					"type": "integer"
				},
				"zeonp": {
					"type": "integer"
				},
				"lock_state": {
					"type": "integer"
				},
				"zeon_to_spend": {
					"type": "integer"
				},
				"mantain_zeon_to_spend": {
					"type": "integer"
				},
				"acu": {
					"type": "boolean"
				}
			}
		},
		"service.SpellRequest": {
			"type": "object",
			"properties": {
				"spell_name": {
					"type": "string"
				},
				"spell_base": {
					"type": "integer"
				},
				"spell_inter": {
					"type": "integer"
				},
				"spell_advanced": {
					"type": "integer"
				},
				"spell_arcane": {
					"type": "integer"
				},
				"spell_base_mantain": {
					"type": "integer"
				},
				"spell_inter_mantain": {
					"type": "integer"
				},
				"spell_advanced_mantain": {
					"type": "integer"
				},
				"spell_arcane_mantain": {
					"type": "integer"
				},
				"spell_via": {
					"type": "string"
				}
			},
			"required": [
				"spell_name",
				"spell_base",
				"spell_inter",
				"spell_advanced",
				"spell_arcane"
			]
		},
		"service.ReadyToCastRequest": {
			"type": "object",
			"properties": {
				"spell_id": {
					"type": "integer"
				},
				"spell_name": {
					"type": "string"
				},
				"spell_zeon": {
					"type": "integer"
				},
				"spell_mantain": {
					"type": "integer"
				},
				"spell_mantain_turn": {
					"type": "boolean"
				},
				"spell_index": {
					"type": "integer"
				}
			},
			"required": [
				"spell_name",
				"spell_zeon"
			]
		},
		"service.MaintainRequest": {
			"type": "object",
			"properties": {
				"spell_id": {
					"type": "integer"
				},
				"spell_name": {
					"type": "string"
				},
				"spell_mantain": {
					"type": "integer"
				},
				"spell_index": {
					"type": "integer"
				}
			},
			"required": [
				"spell_name",
				"spell_mantain"
			]
		},
		"engine.Characteristics": {
			"type": "object",
			"properties": {
				"zeon": {
					"type": "integer"
				},
				"rzeon": {
					"type": "integer"
				},
				"rzeoni": {
					"type": "integer"
				},
				"act": {
					"type": "integer"
				},
				"acu": {
					"type": "boolean"
				},
				"lock_state": {
					"type": "integer"
				}
			}
		},
		"service.ActionRequest": {
			"type": "object",
			"properties": {
				"kind": {
					"type": "string",
					"enum": [
						"next_turn",
						"previous_turn",
						"new_day",
						"reset_turn",
						"spend_zeon",
						"add_zeon",
						"add_accumulated",
						"cast",
						"clear_ready_to_cast",
						"clear_maintained",
						"update_characteristics",
						"recompute"
					]
				},
				"amount": {
					"type": "integer"
				},
				"bucket": {
					"type": "string",
					"enum": [
						"normal",
						"permanent"
					]
				},
				"characteristics": {
					"$ref": "#/definitions/engine.Characteristics"
				}
			},
			"required": [
				"kind"
			]
		},
		"engine.State": {
			"type": "object",
			"properties": {
				"turn_number": {
					"type": "integer"
				},
				"zeon": {
					"type": "integer"
				},
				"rzeon": {
					"type": "integer"
				},
				"zeona": {
					"type": "integer"
				},
				"act": {
					"type": "integer"
				},
				"rzeoni": {
					"type": "integer"
				},
				"zeonp": {
					"type": "integer"
				},
				"lock_state": {
					"type": "integer"
				},
				"zeon_to_spend": {
					"type": "integer"
				},
				"mantain_zeon_to_spend": {
					"type": "integer"
				},
				"acu": {
					"type": "boolean"
				}
			}
		},
		"engine.ReadyEntry": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"spell_id": {
					"type": "integer"
				},
				"spell_name": {
					"type": "string"
				},
				"spell_zeon": {
					"type": "integer"
				},
				"spell_mantain": {
					"type": "integer"
				},
				"spell_mantain_turn": {
					"type": "boolean"
				},
				"spell_index": {
					"type": "integer"
				}
			}
		},
		"engine.MaintainedEntry": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"spell_id": {
					"type": "integer"
				},
				"spell_name": {
					"type": "string"
				},
				"spell_mantain": {
					"type": "integer"
				},
				"spell_index": {
					"type": "integer"
				}
			}
		},
		"service.SnapshotView": {
			"type": "object",
			"properties": {
				"state": {
					"$ref": "#/definitions/engine.State"
				},
				"ready_to_cast": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/engine.ReadyEntry"
					}
				},
				"spell_mantain": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/engine.MaintainedEntry"
					}
				},
				"total_accumulated": {
					"type": "integer"
				},
				"available": {
					"type": "integer"
				}
			}
		},
		"models.Profile": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"user_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.GameState": {
			"type": "object",
			"properties": {
				"turn_number": {
					"type": "integer"
				},
				"zeon": {
					"type": "integer"
				},
				"rzeon": {
					"type": "integer"
				},
				"zeona": {
					"type": "integer"
				},
				"act": {
					"type": "integer"
				},
				"rzeoni": {
					"type": "integer"
				},
				"zeonp": {
					"type": "integer"
				},
				"lock_state": {
					"type": "integer"
				},
				"zeon_to_spend": {
					"type": "integer"
				},
				"mantain_zeon_to_spend": {
					"type": "integer"
				},
				"acu": {
					"type": "boolean"
				},
				"id": {
					"type": "integer"
				},
				"user_profile_id": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Spell": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"user_profile_id": {
					"type": "integer"
				},
				"spell_name": {
					"type": "string"
				},
				"spell_base": {
					"type": "integer"
				},
				"spell_inter": {
					"type": "integer"
				},
				"spell_advanced": {
					"type": "integer"
				},
				"spell_arcane": {
					"type": "integer"
				},
				"spell_base_mantain": {
					"type": "integer"
				},
				"spell_inter_mantain": {
					"type": "integer"
				},
				"spell_advanced_mantain": {
					"type": "integer"
				},
				"spell_arcane_mantain": {
					"type": "integer"
				},
				"spell_via": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.ReadyToCast": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"user_profile_id": {
					"type": "integer"
				},
				"spell_id": {
					"type": "integer"
				},
				"spell_name": {
					"type": "string"
				},
				"spell_zeon": {
					"type": "integer"
				},
				"spell_mantain": {
					"type": "integer"
				},
				"spell_mantain_turn": {
					"type": "boolean"
				},
				"spell_index": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.SpellMaintain": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"user_profile_id": {
					"type": "integer"
				},
				"spell_id": {
					"type": "integer"
				},
				"spell_name": {
					"type": "string"
				},
				"spell_mantain": {
					"type": "integer"
				},
				"spell_index": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		}
	},
	"securityDefinitions": {
		"Bearer": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo 接口文档元信息
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Anima Counter API",
	Description:      "Anima 魔力（Zeon）资源计数服务",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
