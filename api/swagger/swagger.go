package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Schedule Builder API",
        "description": "Course search, conflict-free schedule generation and export",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Academic periods and departments"},
        {"name": "Courses", "description": "Session course basket"},
        {"name": "Schedules", "description": "Schedule generation and browsing"},
        {"name": "Exports", "description": "CSV/PDF schedule exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/periods": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List available academic periods",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/departments": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List departments for an academic period",
                "parameters": [
                    {"name": "academicPeriod", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/period": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Switch the session's academic period",
                "description": "Changing period clears the course basket and any generated schedules.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetPeriodRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List the courses currently in the basket",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Search the catalog and add matches to the basket",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddCoursesRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{courseId}": {
            "delete": {
                "tags": ["Courses"],
                "summary": "Remove a course from the basket",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/generate": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Generate ranked conflict-free schedules for the basket",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateSchedulesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/current": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Get the schedule at the current cursor",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/next": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Advance the cursor to the next schedule",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/previous": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Move the cursor to the previous schedule",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports": {
            "post": {
                "tags": ["Exports"],
                "summary": "Queue an export of the current schedule",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/{id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Get export job status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/download/{token}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a finished export via signed token",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File stream"}
                }
            }
        }
    },
    "definitions": {
        "AcademicPeriod": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "displayName": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "isActive": {"type": "boolean"}
            }
        },
        "Section": {
            "type": "object",
            "properties": {
                "courseId": {"type": "string"},
                "number": {"type": "string"},
                "instructionalFormat": {"type": "string"},
                "daysOfTheWeek": {"type": "string"},
                "timeStart": {"type": "string"},
                "timeEnd": {"type": "string"},
                "instructor": {"type": "string"},
                "location": {"type": "string"},
                "deliveryMode": {"type": "string"},
                "openSeats": {"type": "integer"},
                "credits": {"type": "string"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "courseId": {"type": "string"},
                "courseName": {"type": "string"},
                "description": {"type": "string"},
                "sections": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Section"}
                }
            }
        },
        "Schedule": {
            "type": "object",
            "properties": {
                "selections": {"type": "array", "items": {"type": "object"}},
                "score": {"type": "integer"}
            }
        },
        "SetPeriodRequest": {
            "type": "object",
            "properties": {
                "academicPeriodId": {"type": "string"}
            },
            "required": ["academicPeriodId"]
        },
        "AddCoursesRequest": {
            "type": "object",
            "properties": {
                "department": {"type": "string"},
                "courseId": {"type": "string"},
                "academicPeriodId": {"type": "string"}
            },
            "required": ["department"]
        },
        "SchedulePreferences": {
            "type": "object",
            "properties": {
                "preferredDays": {"type": "array", "items": {"type": "string"}},
                "timePreference": {"type": "string", "enum": ["morning", "afternoon", "evening"]},
                "gapPreference": {"type": "string", "enum": ["none", "minimal", "short", "medium", "long"]},
                "scheduleStyle": {"type": "string", "enum": ["compact", "spread"]}
            }
        },
        "GenerateSchedulesRequest": {
            "type": "object",
            "properties": {
                "maxSchedules": {"type": "integer"},
                "uniqueOnly": {"type": "boolean"},
                "preferences": {"$ref": "#/definitions/SchedulePreferences"}
            }
        },
        "CreateExportRequest": {
            "type": "object",
            "properties": {
                "format": {"type": "string", "enum": ["csv", "pdf"]}
            },
            "required": ["format"]
        },
        "ExportJob": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "status": {"type": "string"},
                "format": {"type": "string"},
                "downloadUrl": {"type": "string"},
                "expiresAt": {"type": "string"},
                "error": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
