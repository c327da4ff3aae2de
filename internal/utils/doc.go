// Package utils holds small shared helpers: the HTTP request plumbing used
// by every cloud operation (JSON and multipart round trips with uniform
// body handling and logging) and string hygiene for error messages.
package utils
