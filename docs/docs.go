// Package docs contiene la descripción OpenAPI que sirve /swagger.
// Se mantiene a mano: cada operación refleja las anotaciones @Summary,
// @Param, @Success, @Failure y @Router de los handlers en internal/domain.
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
        "/api/admin/login": {
            "post": {
                "description": "Verifica el par configurado en admin.username / admin.password. Sin par configurado siempre responde 401. No emite sesión ni token.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Login de operador",
                "parameters": [
                    {
                        "description": "Credenciales del operador",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "401": {
                        "description": "Invalid username or password.",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/adoptions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "adoptions"
                ],
                "summary": "Listar solicitudes de adopción",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/adoptions.applicationResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Formulario público. Todos los campos son obligatorios; la solicitud queda en \"Pending\".",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "adoptions"
                ],
                "summary": "Enviar solicitud de adopción",
                "parameters": [
                    {
                        "description": "Formulario de adopción",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/adoptions.submitApplicationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "animal inexistente",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/adoptions/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "adoptions"
                ],
                "summary": "Obtener solicitud de adopción",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ApplicationID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/adoptions.applicationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "put": {
                "description": "Cambiar Status no modifica el Status del animal.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "adoptions"
                ],
                "summary": "Actualizar solicitud de adopción",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ApplicationID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/adoptions.updateApplicationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "adoptions"
                ],
                "summary": "Eliminar solicitud de adopción",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ApplicationID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/animals": {
            "get": {
                "description": "Devuelve todos los animales ordenados por AnimalID.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Listar animales",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/animals.animalResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "post": {
                "description": "Name y Species son obligatorios. ArrivalDate (YYYY-MM-DD) por defecto hoy; Status por defecto \"Available\".",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Registrar animal",
                "parameters": [
                    {
                        "description": "Datos del animal",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.createAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "campo faltante o inválido",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/animals/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Obtener animal",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "AnimalID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "put": {
                "description": "Update parcial: sólo cambian las claves presentes. Age: null la limpia.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Actualizar animal",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "AnimalID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.createAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "description": "Borra también sus historias clínicas y solicitudes de adopción.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Eliminar animal",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "AnimalID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/donations": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donations"
                ],
                "summary": "Listar donaciones",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/donations.donationResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Formulario público. Busca el donante por nombre exacto o lo crea; la donación queda con método \"Online\" y fecha de hoy. Responde 200 (no 201) por compatibilidad con el front.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donations"
                ],
                "summary": "Donar",
                "parameters": [
                    {
                        "description": "Donación",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/donations.submitDonationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "falta nombre/monto o monto inválido",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/donations/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donations"
                ],
                "summary": "Obtener donación",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "DonationID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/donations.donationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donations"
                ],
                "summary": "Actualizar donación",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "DonationID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/donations.updateDonationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donations"
                ],
                "summary": "Eliminar donación",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "DonationID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/donors": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donors"
                ],
                "summary": "Listar donantes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/donors.donorResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donors"
                ],
                "summary": "Registrar donante",
                "parameters": [
                    {
                        "description": "Donante",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/donors.donorRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/donors/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donors"
                ],
                "summary": "Obtener donante",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "DonorID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/donors.donorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donors"
                ],
                "summary": "Actualizar donante",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "DonorID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/donors.donorRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "description": "Borra también todas sus donaciones.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "donors"
                ],
                "summary": "Eliminar donante",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "DonorID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/medical": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medical"
                ],
                "summary": "Listar historias clínicas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/medical.recordResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "AnimalID, Date y Description son obligatorios. El animal tiene que existir.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medical"
                ],
                "summary": "Registrar historia clínica",
                "parameters": [
                    {
                        "description": "Entrada clínica",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medical.createRecordRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "animal inexistente",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/medical/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medical"
                ],
                "summary": "Obtener historia clínica",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "RecordID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medical.recordResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medical"
                ],
                "summary": "Actualizar historia clínica",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "RecordID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medical.createRecordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medical"
                ],
                "summary": "Eliminar historia clínica",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "RecordID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/users/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Login de usuario",
                "parameters": [
                    {
                        "description": "Credenciales",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.loginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "401": {
                        "description": "Invalid email or password.",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/users/signup": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Registrar usuario",
                "parameters": [
                    {
                        "description": "Datos de la cuenta",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.signupRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "campo faltante o email ya registrado",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/volunteers": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "volunteers"
                ],
                "summary": "Listar voluntarios",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/volunteers.volunteerResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Name es obligatorio; JoinDate por defecto hoy.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "volunteers"
                ],
                "summary": "Registrar voluntario",
                "parameters": [
                    {
                        "description": "Voluntario",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/volunteers.volunteerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        },
        "/api/volunteers/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "volunteers"
                ],
                "summary": "Obtener voluntario",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "VolunteerID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/volunteers.volunteerResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "volunteers"
                ],
                "summary": "Actualizar voluntario",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "VolunteerID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/volunteers.volunteerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "volunteers"
                ],
                "summary": "Eliminar voluntario",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "VolunteerID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.Envelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "admin.loginRequest": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string"
                },
                "username": {
                    "type": "string",
                    "example": "keeper"
                }
            }
        },
        "adoptions.applicationResponse": {
            "type": "object",
            "properties": {
                "AnimalID": {
                    "type": "integer"
                },
                "AnimalName": {
                    "type": "string"
                },
                "ApplicantAddress": {
                    "type": "string"
                },
                "ApplicantContact": {
                    "type": "string"
                },
                "ApplicantName": {
                    "type": "string"
                },
                "ApplicationDate": {
                    "type": "string"
                },
                "ApplicationID": {
                    "type": "integer"
                },
                "Status": {
                    "type": "string"
                }
            }
        },
        "adoptions.submitApplicationRequest": {
            "type": "object",
            "properties": {
                "adoptAddress": {
                    "type": "string",
                    "example": "Av. Siempre Viva 742"
                },
                "adoptAnimal": {
                    "type": "integer",
                    "example": 1
                },
                "adoptAnimalName": {
                    "type": "string",
                    "example": "Rex"
                },
                "adoptContact": {
                    "type": "string",
                    "example": "ana@example.com"
                },
                "adoptName": {
                    "type": "string",
                    "example": "Ana Pérez"
                }
            }
        },
        "adoptions.updateApplicationRequest": {
            "type": "object",
            "properties": {
                "AnimalID": {
                    "type": "integer"
                },
                "ApplicantAddress": {
                    "type": "string"
                },
                "ApplicantContact": {
                    "type": "string"
                },
                "ApplicantName": {
                    "type": "string"
                },
                "ApplicationDate": {
                    "type": "string"
                },
                "Status": {
                    "type": "string",
                    "example": "Approved"
                }
            }
        },
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "Age": {
                    "type": "integer"
                },
                "AnimalID": {
                    "type": "integer"
                },
                "ArrivalDate": {
                    "type": "string"
                },
                "Breed": {
                    "type": "string"
                },
                "Gender": {
                    "type": "string"
                },
                "Name": {
                    "type": "string"
                },
                "Species": {
                    "type": "string"
                },
                "Status": {
                    "type": "string"
                }
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "properties": {
                "Age": {
                    "type": "integer"
                },
                "ArrivalDate": {
                    "type": "string",
                    "example": "2024-03-01"
                },
                "Breed": {
                    "type": "string"
                },
                "Gender": {
                    "type": "string"
                },
                "Name": {
                    "type": "string",
                    "example": "Rex"
                },
                "Species": {
                    "type": "string",
                    "example": "Dog"
                },
                "Status": {
                    "type": "string",
                    "example": "Available"
                }
            }
        },
        "donations.donationResponse": {
            "type": "object",
            "properties": {
                "Amount": {
                    "type": "string"
                },
                "Date": {
                    "type": "string"
                },
                "DonationID": {
                    "type": "integer"
                },
                "DonorID": {
                    "type": "integer"
                },
                "Method": {
                    "type": "string"
                }
            }
        },
        "donations.submitDonationRequest": {
            "type": "object",
            "properties": {
                "donationAmount": {
                    "type": "string",
                    "example": "25.50"
                },
                "donorContact": {
                    "type": "string",
                    "example": "ana@example.com"
                },
                "donorName": {
                    "type": "string",
                    "example": "Ana Pérez"
                }
            }
        },
        "donations.updateDonationRequest": {
            "type": "object",
            "properties": {
                "Amount": {
                    "type": "string",
                    "example": "30.00"
                },
                "Date": {
                    "type": "string",
                    "example": "2024-05-05"
                },
                "DonorID": {
                    "type": "integer"
                },
                "Method": {
                    "type": "string"
                }
            }
        },
        "donors.donorRequest": {
            "type": "object",
            "properties": {
                "ContactInfo": {
                    "type": "string",
                    "example": "ana@example.com"
                },
                "Name": {
                    "type": "string",
                    "example": "Ana Pérez"
                }
            }
        },
        "donors.donorResponse": {
            "type": "object",
            "properties": {
                "ContactInfo": {
                    "type": "string"
                },
                "DonorID": {
                    "type": "integer"
                },
                "Name": {
                    "type": "string"
                }
            }
        },
        "medical.createRecordRequest": {
            "type": "object",
            "properties": {
                "AnimalID": {
                    "type": "integer",
                    "example": 1
                },
                "Date": {
                    "type": "string",
                    "example": "2024-03-02"
                },
                "Description": {
                    "type": "string",
                    "example": "Vacuna antirrábica"
                },
                "VetName": {
                    "type": "string"
                }
            }
        },
        "medical.recordResponse": {
            "type": "object",
            "properties": {
                "AnimalID": {
                    "type": "integer"
                },
                "Date": {
                    "type": "string"
                },
                "Description": {
                    "type": "string"
                },
                "RecordID": {
                    "type": "integer"
                },
                "VetName": {
                    "type": "string"
                }
            }
        },
        "respond.Envelope": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "users.loginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "ana@example.com"
                },
                "password": {
                    "type": "string",
                    "example": "s3cret"
                }
            }
        },
        "users.loginResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                },
                "user": {
                    "$ref": "#/definitions/users.userResponse"
                }
            }
        },
        "users.signupRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "ana@example.com"
                },
                "name": {
                    "type": "string",
                    "example": "Ana Pérez"
                },
                "password": {
                    "type": "string",
                    "example": "s3cret"
                }
            }
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "volunteers.volunteerRequest": {
            "type": "object",
            "properties": {
                "AssignedTasks": {
                    "type": "string",
                    "example": "Paseos de la mañana"
                },
                "ContactInfo": {
                    "type": "string"
                },
                "JoinDate": {
                    "type": "string",
                    "example": "2024-01-15"
                },
                "Name": {
                    "type": "string",
                    "example": "Vera"
                }
            }
        },
        "volunteers.volunteerResponse": {
            "type": "object",
            "properties": {
                "AssignedTasks": {
                    "type": "string"
                },
                "ContactInfo": {
                    "type": "string"
                },
                "JoinDate": {
                    "type": "string"
                },
                "Name": {
                    "type": "string"
                },
                "VolunteerID": {
                    "type": "integer"
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
	Schemes:          []string{},
	Title:            "Shelter Records API",
	Description:      "Registros del refugio: animales, historias clínicas, adopciones, donantes, donaciones, voluntarios y cuentas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
