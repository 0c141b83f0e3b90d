// Package utils provides small parsing helpers shared by the CSV reader and HTTP handlers.
package utils
