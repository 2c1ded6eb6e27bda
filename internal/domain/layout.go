package domain

import "path/filepath"

const (
	DirIn  = "in"
	DirMid = "mid"
	DirOut = "out"

	DirFeedback   = "feedback"
	DirPlate      = "plate"
	DirRef        = "ref"
	DirSFX        = "sfx"
	DirNuke       = "nuke"
	DirShapes     = "shapes"
	DirScripts    = "scripts"
	DirSilhouette = "silhouette"
	DirPreRender  = "pre_render"

	rotoTag = "_roto"
)

// DirectorySpec is an ordered list of paths relative to the shot root.
type DirectorySpec []string

// ShotRoot is basePath/show/shot.
func ShotRoot(basePath string, identity ShotIdentity) string {
	return filepath.Join(basePath, identity.Show, identity.Shot)
}

func OutputRoot(shotRoot string) string {
	return filepath.Join(shotRoot, DirOut)
}

func VersionDirName(shot string, version Version) string {
	return shot + rotoTag + "_" + version.String()
}

// DeliverableNames lists the folders inside a versioned output directory.
func DeliverableNames(shot string, version Version) []string {
	tag := version.String()
	return []string{
		shot + rotoTag + "_matte_01_" + tag,
		shot + rotoTag + "_matte_02_" + tag,
		shot + rotoTag + "_sfx_" + tag,
		shot + rotoTag + "_nuke_script_" + tag,
	}
}

// BaseSpec covers the unversioned in/ and mid/ subtrees.
func BaseSpec(identity ShotIdentity) DirectorySpec {
	artist := identity.Artist
	return DirectorySpec{
		filepath.Join(DirIn, DirFeedback),
		filepath.Join(DirIn, DirPlate),
		filepath.Join(DirIn, DirRef),
		filepath.Join(DirMid, artist, DirSFX),
		filepath.Join(DirMid, artist, DirNuke, DirShapes),
		filepath.Join(DirMid, artist, DirNuke, DirScripts),
		filepath.Join(DirMid, artist, DirSilhouette, DirShapes),
		filepath.Join(DirMid, artist, DirPreRender),
	}
}

// OutputSpec covers out/<shot>_roto_vNNN and its deliverables.
func OutputSpec(identity ShotIdentity, version Version) DirectorySpec {
	versionDir := filepath.Join(DirOut, VersionDirName(identity.Shot, version))
	spec := DirectorySpec{versionDir}
	for _, name := range DeliverableNames(identity.Shot, version) {
		spec = append(spec, filepath.Join(versionDir, name))
	}
	return spec
}

// FullSpec is BaseSpec followed by out/ and OutputSpec.
func FullSpec(identity ShotIdentity, version Version) DirectorySpec {
	spec := BaseSpec(identity)
	spec = append(spec, DirOut)
	return append(spec, OutputSpec(identity, version)...)
}

// Under joins every entry onto root.
func (spec DirectorySpec) Under(root string) []string {
	paths := make([]string, 0, len(spec))
	for _, rel := range spec {
		paths = append(paths, filepath.Join(root, rel))
	}
	return paths
}
