// Package main hosts the sitecfg CLI entrypoint and command graph.
//
// The Cobra command tree scaffolds, validates, and inspects the site
// configuration consumed by the blog's static site generator. It centralizes
// configuration resolution and structured logging setup so subcommands only
// deal with presentation.
//
// Keep this package lean: behavior belongs in internal/config and friends;
// commands here only load, format, and print.
package main
