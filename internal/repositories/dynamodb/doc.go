// Package dynamodb provides the DynamoDB-backed implementation of
// [repositories.TodoRepository].
//
// # Table layout
//
// One item per todo, keyed by a string partition key "id" with no sort key:
//
//   - id        (S)    partition key, supplied by the client
//   - title     (S)
//   - completed (BOOL)
//
// # Getting Started
//
// Create a [Client] with [New], supplying an AWS config and the table name,
// then call [Client.Connect]:
//
//	client := dynamodb.New(&awsCfg, tableName)
//	if err := client.Connect(); err != nil {
//	    return err
//	}
//
// Supply [WithEndpoint] to talk to DynamoDB Local, or [WithAPI] to inject a
// mock implementation. [Client.Init] optionally verifies the table schema.
//
// # Not-found detection
//
// Absence is detected from what DynamoDB returns: an empty GetItem result,
// an empty ALL_OLD image on DeleteItem, or a failed attribute_exists(id)
// condition on UpdateItem. No item is read before it is mutated.
//
// # Concurrency
//
// [Client] is safe for concurrent use by multiple goroutines once
// [Client.Connect] has returned.
package dynamodb
