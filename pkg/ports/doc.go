// Package ports defines the interfaces through which the core reaches its
// collaborators, following the hexagonal layout: the domain stays pure and
// adapters (file, memory, redis) plug in behind these contracts.
package ports
