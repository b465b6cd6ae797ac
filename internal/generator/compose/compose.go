// Package compose renders the docker-compose manifest for a local Qdrant.
package compose

import (
	"fmt"
	"net/url"
	"strconv"
)

// DefaultPort is Qdrant's HTTP port inside the container, and the host port
// used when none can be derived from the service URL.
const DefaultPort = 6333

// GRPCPort is the fixed auxiliary port.
const GRPCPort = 6334

const manifestFormat = `version: '3'
services:
  qdrant:
    image: qdrant/qdrant:latest
    ports:
      - "%[1]d:%[2]d"
      - "%[3]d:%[3]d"
    volumes:
      - ./qdrant_storage:/qdrant/storage
    environment:
      - QDRANT__SERVICE__GRPC_PORT=%[3]d
    restart: always

# Instructions:
# 1. Save this file as 'docker-compose.yml'
# 2. Run 'docker-compose up -d'
# 3. Qdrant will be available at http://localhost:%[1]d`

// Generate renders the manifest mapping hostPort to the container's HTTP port.
func Generate(hostPort int) string {
	return fmt.Sprintf(manifestFormat, hostPort, DefaultPort, GRPCPort)
}

// PortFromURL returns the explicit port of rawURL. It falls back to DefaultPort
// when the URL does not parse, has no scheme or host, or carries no valid port.
func PortFromURL(rawURL string) int {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return DefaultPort
	}
	p := u.Port()
	if p == "" {
		return DefaultPort
	}
	n, err := strconv.Atoi(p)
	// Port 0 is not a bindable host port, so it falls back like any out-of-range value.
	if err != nil || n < 1 || n > 65535 {
		return DefaultPort
	}
	return n
}
