package services

type BuildRequest struct {
	RootPath string
}

type ViewRequest struct {
	Path     string
	MaxDepth int
}

type RemoveRequest struct {
	Paths []string
}
