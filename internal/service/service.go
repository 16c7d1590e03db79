// Package service contains the business logic.
//
// It sits behind the handler layer and receives payloads that
// have already been bound and validated. Registration keeps no
// state: accepted input is turned straight into the response.
package service
