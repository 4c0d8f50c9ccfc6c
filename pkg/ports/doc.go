/*
Package ports defines the driving port (interface) adapters use to reach the Helix engine.

Adapters such as the HTTP server and the MCP server depend on Transcoder rather than on
the concrete *helix.Engine, so they can be tested against fakes.
*/
package ports
