// Command mcp-server exposes a WordPress calendar site (The Events Calendar
// and Event Tickets) to automated agents over the Model Context Protocol.
package main

func main() {
	Execute()
}
