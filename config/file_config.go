package config

import (
	yaml "gopkg.in/yaml.v2"

	"github.com/pivotal-cf/linegrep/search"
)

type FileConfig struct {
	Case *search.Policy `yaml:"case"`
}

func LoadFileConfig(bs []byte) (*FileConfig, error) {
	c := &FileConfig{}
	err := yaml.UnmarshalStrict(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}
