// Package services implements the core use cases behind the driving ports.
// ScanService coordinates enumeration, extraction and matching on a bounded
// worker pool; LexiconService wraps the synonym lexicon with graceful
// degradation when the dataset is missing.
package services
