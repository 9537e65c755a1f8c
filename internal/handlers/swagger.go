package handlers

// @title Serverless Todos API
// @version 1.0
// @description Create, read, update and delete todo items stored in DynamoDB.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name todos
// @tag.description Todo item operations

// @tag.name health
// @tag.description Service health
