// Package kernelspec writes the kernel descriptor directories Jupyter
// discovers notebook kernels through.
package kernelspec

// DirPrefix marks descriptor directories owned by kernelsync. Anything under
// the kernel root carrying this prefix is disposable and is swept and
// recreated on every run; entries without it are never touched.
const DirPrefix = "AUTO_"

// FileName is the descriptor file name Jupyter expects inside each kernel
// directory.
const FileName = "kernel.json"

const (
	displayNameSuffix = "-conda-env"
	kernelLanguage    = "python"
)

// Spec is the kernel.json document. The field names and argv shape are a
// wire contract with Jupyter's kernelspec loader.
type Spec struct {
	DisplayName string   `json:"display_name"`
	Language    string   `json:"language"`
	Argv        []string `json:"argv"`
}

// New builds the descriptor launching the given environment's python as an
// ipykernel. The {connection_file} placeholder is substituted by Jupyter at
// kernel start.
func New(name, interpreter string) Spec {
	return Spec{
		DisplayName: name + displayNameSuffix,
		Language:    kernelLanguage,
		Argv:        []string{interpreter, "-m", "ipykernel", "-f", "{connection_file}"},
	}
}
