// Package jsonl provides a Parser for JSON Lines data, with columns extracted by
// https://github.com/tidwall/gjson paths
package jsonl
