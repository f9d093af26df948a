package collector

import (
	"context"
	"log"
	"os"
	"strings"

	"termtools/models"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// HasDocker reports whether a Docker daemon socket is reachable.
func HasDocker() bool {
	_, err := os.Stat("/var/run/docker.sock")
	return err == nil
}

// Containers lists all containers (running and stopped). Returns nil when
// no daemon is available; the sysinfo report just omits the section.
func Containers() []models.ContainerInfo {
	if !HasDocker() {
		return nil
	}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		log.Printf("Docker client error: %v", err)
		return nil
	}
	defer cli.Close()

	containerList, err := cli.ContainerList(context.Background(), container.ListOptions{All: true})
	if err != nil {
		log.Printf("Docker list error: %v", err)
		return nil
	}

	result := make([]models.ContainerInfo, 0, len(containerList))
	for _, c := range containerList {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		id := c.ID
		if len(id) > 12 {
			id = id[:12]
		}

		result = append(result, models.ContainerInfo{
			ID:      id,
			Name:    name,
			Image:   c.Image,
			Status:  c.Status,
			State:   c.State,
			Created: c.Created,
		})
	}

	return result
}
