// Package main provides the entry point of zonechange, a command line tool
// that stages changes to a DNS zone as a reviewable change log. Change logs
// live in a JSON or YAML file or as named change sets in a gorm backed
// database, and are replayed against the zone file when applied.
package main
