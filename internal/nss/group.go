package nss

import (
	"bytes"
	"os"
	"strings"
)

type GroupEntry struct {
	Name    string
	Passwd  string
	GID     int
	Members []string
}

type GroupFile struct {
	entries []GroupEntry
}

func LoadGroup(path string) (*GroupFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	f := &GroupFile{}
	for _, line := range lines {
		if skippable(line, 4) {
			continue
		}
		parts := parseColonLine(line)
		gid, err := atoi(parts[2], "group.gid")
		if err != nil {
			return nil, err
		}
		members := []string{}
		if parts[3] != "" {
			members = strings.Split(parts[3], ",")
		}
		f.entries = append(f.entries, GroupEntry{
			Name:    parts[0],
			Passwd:  parts[1],
			GID:     gid,
			Members: members,
		})
	}
	return f, nil
}

func (f *GroupFile) Find(name string) *GroupEntry {
	for i := range f.entries {
		if f.entries[i].Name == name {
			return &f.entries[i]
		}
	}
	return nil
}

func (f *GroupFile) HasMember(group, user string) bool {
	g := f.Find(group)
	if g == nil {
		return false
	}
	for _, m := range g.Members {
		if m == user {
			return true
		}
	}
	return false
}
