// Package server implements the MCP (Model Context Protocol) server for hash
// fingerprint tools.
//
// This package provides a JSON-RPC 2.0 server that exposes colorhash rendering
// through the MCP protocol, so a client can show a user a picture of a digest
// instead of a long hex string.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Classification:
//   - colorhash_detect_algorithm: Identify a digest's algorithm
//   - colorhash_matricize: Grid and palette colors for a digest
//
// Rendering:
//   - colorhash_render_svg: SVG fingerprint
//   - colorhash_render_png: Base64 PNG fingerprint
//   - colorhash_render_ansi: Terminal fingerprint
//
// Files and comparison:
//   - colorhash_hash_file: Hash a file and render it
//   - colorhash_compare: Compare two digests
//
// Palettes:
//   - colorhash_list_palettes: List the palette catalog
//
// # Digest Caching
//
// File digests are cached by path and algorithm for the lifetime of the
// server process, so repeated calls on a large file hash it only once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Lines that are not valid JSON get a -32700 parse error with a null id.
//
// # Usage
//
//	srv := server.New(cfg, catalog, logger)
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    logger.Fatal(err)
//	}
package server
