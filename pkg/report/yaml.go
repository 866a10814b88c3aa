package report

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/user/fatsim/pkg/fat"
)

// YAMLFormatter renders snapshots as YAML documents.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

type yamlDocument struct {
	Geometry *yamlGeometry `yaml:"geometry,omitempty"`
	Files    *[]yamlFile   `yaml:"files,omitempty"`
	Table    []yamlCluster `yaml:"table,omitempty"`
	Stats    *yamlStats    `yaml:"stats,omitempty"`
}

type yamlGeometry struct {
	MaxFiles    int `yaml:"max_files"`
	NumClusters int `yaml:"num_clusters"`
	ClusterSize int `yaml:"cluster_size"`
}

type yamlFile struct {
	Slot         int    `yaml:"slot"`
	Name         string `yaml:"name"`
	Size         int    `yaml:"size"`
	StartCluster int    `yaml:"start_cluster"`
	Chain        []int  `yaml:"chain,flow"`
}

type yamlCluster struct {
	Index int    `yaml:"index"`
	State string `yaml:"state"`
	Next  *int   `yaml:"next,omitempty"`
}

type yamlStats struct {
	Total     int `yaml:"total"`
	Free      int `yaml:"free"`
	Used      int `yaml:"used"`
	FreeBytes int `yaml:"free_bytes"`
	UsedBytes int `yaml:"used_bytes"`
}

// Format implements Formatter.
func (f *YAMLFormatter) Format(snap fat.Snapshot, view View) (string, error) {
	var doc yamlDocument

	if view == ViewAll {
		doc.Geometry = &yamlGeometry{
			MaxFiles:    snap.Geometry.MaxFiles,
			NumClusters: snap.Geometry.NumClusters,
			ClusterSize: snap.Geometry.ClusterSize,
		}
	}

	if view == ViewDirectory || view == ViewAll {
		files, err := yamlFiles(snap)
		if err != nil {
			return "", err
		}
		doc.Files = &files
	}

	if view == ViewTable || view == ViewAll {
		for i, c := range snap.Table {
			yc := yamlCluster{Index: i, State: c.State.String()}
			if c.State == fat.StateNext {
				next := c.Next
				yc.Next = &next
			}
			doc.Table = append(doc.Table, yc)
		}
	}

	if view == ViewStats || view == ViewAll {
		doc.Stats = &yamlStats{
			Total:     snap.Stats.Total,
			Free:      snap.Stats.Free,
			Used:      snap.Stats.Used,
			FreeBytes: snap.Stats.FreeBytes,
			UsedBytes: snap.Stats.UsedBytes,
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return string(data), nil
}

func yamlFiles(snap fat.Snapshot) ([]yamlFile, error) {
	files := []yamlFile{}
	for slot, e := range snap.Slots {
		if !e.Active {
			continue
		}
		chain, err := snap.ChainOf(e)
		if err != nil {
			return nil, err
		}
		if chain == nil {
			chain = []int{}
		}
		files = append(files, yamlFile{
			Slot:         slot,
			Name:         e.Name,
			Size:         e.Size,
			StartCluster: e.StartCluster,
			Chain:        chain,
		})
	}
	return files, nil
}
