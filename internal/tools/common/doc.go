// Package common holds helpers shared by the tool registration packages:
// the instrumented handler wrapper and request argument extraction.
package common
