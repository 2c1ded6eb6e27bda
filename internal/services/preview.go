package services

import (
	"path/filepath"
	"strings"

	"fstruct/internal/domain"
)

const (
	PlaceholderShow   = "<SHOW>"
	PlaceholderShot   = "<SHOT>"
	PlaceholderArtist = "<ARTIST>"

	EmptyPreviewMessage = "Enter Show & Shot to preview"
)

// PreviewTree projects the tree CreateShotTree would build, labeled by name
// only. It never touches the filesystem and always shows v001.
func PreviewTree(show, shot, artist string) *domain.Node {
	identity := domain.NewShotIdentity(show, shot, artist)
	if identity.Show == "" && identity.Shot == "" {
		return domain.NewNode(EmptyPreviewMessage)
	}
	identity.Show = orPlaceholder(identity.Show, PlaceholderShow)
	identity.Shot = orPlaceholder(identity.Shot, PlaceholderShot)
	identity.Artist = orPlaceholder(identity.Artist, PlaceholderArtist)

	root := domain.NewNode(identity.Show)
	shotNode := domain.NewNode(identity.Shot)
	root.Add(shotNode)
	for _, rel := range domain.FullSpec(identity, domain.FirstVersion) {
		insertPath(shotNode, rel)
	}
	return root
}

func insertPath(root *domain.Node, rel string) {
	current := root
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if segment == "" {
			continue
		}
		current = childNamed(current, segment)
	}
}

func childNamed(parent *domain.Node, name string) *domain.Node {
	for _, child := range parent.Children {
		if child.Name == name {
			return child
		}
	}
	child := domain.NewNode(name)
	parent.Add(child)
	return child
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
