package models

// PathMetadata is resolved once per run and never cached.
type PathMetadata struct {
	SrcPath            string // Source path as given, relative to the base directory
	SrcAbsolutePath    string
	TargetPath         string // Generated test path, relative to the base directory
	TargetAbsolutePath string
	SrcPathInTest      string // Module path the generated test passes to proxyquire
}

// SkeletonData is the template input for a generated test file.
type SkeletonData struct {
	SrcPath       string
	SrcPathInTest string
	TargetPath    string
	Modules       []StubSpec
}

func NewSkeletonData(paths PathMetadata, result *InspectionResult) SkeletonData {
	data := SkeletonData{
		SrcPath:       paths.SrcPath,
		SrcPathInTest: paths.SrcPathInTest,
		TargetPath:    paths.TargetPath,
	}
	if result != nil {
		data.Modules = result.Stubs
	}
	return data
}
