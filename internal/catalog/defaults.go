package catalog

import "github.com/imamik/devsetup/internal/shellrc"

// Profile hook lines appended by the stacks. Markers are substrings stable
// enough to survive manual edits around them.
const (
	pyenvRootLine   = `export PYENV_ROOT="$HOME/.pyenv"`
	pyenvRootMarker = "PYENV_ROOT"
	pyenvInitLine   = `eval "$(pyenv init -)"`
	pyenvInitMarker = "pyenv init"

	nvmDirLine      = `export NVM_DIR="$HOME/.nvm"`
	nvmDirMarker    = "NVM_DIR"
	nvmLoadLine     = `[ -s "/opt/homebrew/opt/nvm/nvm.sh" ] && \. "/opt/homebrew/opt/nvm/nvm.sh"`
	nvmLoadMarker   = "nvm.sh"
	condaHookLine   = `source "/opt/homebrew/Caskroom/miniconda/base/etc/profile.d/conda.sh"`
	condaHookMarker = "profile.d/conda.sh"
)

// Default returns the built-in catalog with the four standard stacks.
func Default() *Catalog {
	return &Catalog{
		Stacks: []Stack{
			{
				ID:          StackAcademic,
				Name:        "Academic Writing",
				Description: "Pandoc, LaTeX, reference management, and a Markdown editor setup",
				Tools: []ToolSpec{
					{Name: "pandoc", Method: MethodBrew},
					{Name: "basictex", Method: MethodCask},
					{Name: "zotero", Method: MethodCask},
					{Name: "obsidian", Method: MethodCask},
					{Name: "visual-studio-code", Method: MethodCask},
					{Name: "james-yu.latex-workshop", Method: MethodExtension, BestEffort: true},
					{Name: "yzhang.markdown-all-in-one", Method: MethodExtension, BestEffort: true},
				},
				Notes: []string{
					"Open Zotero once to finish its first-run setup.",
					"basictex may need `sudo tlmgr update --self` before installing LaTeX packages.",
				},
			},
			{
				ID:          StackDataScience,
				Name:        "Data Science",
				Description: "Miniconda with a ready-to-use analysis environment and Jupyter",
				CondaEnv:    "datasci",
				Tools: []ToolSpec{
					{Name: "miniconda", Method: MethodCask},
					{Name: "visual-studio-code", Method: MethodCask},
					{Name: "numpy", Method: MethodConda},
					{Name: "pandas", Method: MethodConda},
					{Name: "matplotlib", Method: MethodConda},
					{Name: "scikit-learn", Method: MethodConda},
					{Name: "jupyterlab", Method: MethodConda},
					{Name: "ms-python.python", Method: MethodExtension, BestEffort: true},
					{Name: "ms-toolsai.jupyter", Method: MethodExtension, BestEffort: true},
				},
				ProfileLines: []shellrc.ProfileLine{
					{Marker: condaHookMarker, Line: condaHookLine},
				},
				Notes: []string{
					"Activate the environment with `conda activate datasci`.",
				},
			},
			{
				ID:          StackWebPython,
				Name:        "Web Development (Python)",
				Description: "pyenv-managed Python with common web frameworks",
				Tools: []ToolSpec{
					{Name: "pyenv", Method: MethodBrew},
					{Name: "visual-studio-code", Method: MethodCask},
					{Name: "flask", Method: MethodPip},
					{Name: "django", Method: MethodPip},
					{Name: "black", Method: MethodPip},
					{Name: "ms-python.python", Method: MethodExtension, BestEffort: true},
				},
				ProfileLines: []shellrc.ProfileLine{
					{Marker: pyenvRootMarker, Line: pyenvRootLine},
					{Marker: pyenvInitMarker, Line: pyenvInitLine},
				},
				Notes: []string{
					"Install a Python version with `pyenv install 3.12` and select it with `pyenv global 3.12`.",
				},
			},
			{
				ID:          StackWebJS,
				Name:        "Web Development (JavaScript)",
				Description: "nvm-managed Node.js with a TypeScript toolchain",
				Tools: []ToolSpec{
					{Name: "nvm", Method: MethodBrew},
					{Name: "visual-studio-code", Method: MethodCask},
					{Name: "lts/*", Method: MethodNvm},
					{Name: "typescript", Method: MethodNpm},
					{Name: "eslint", Method: MethodNpm},
					{Name: "prettier", Method: MethodNpm},
					{Name: "dbaeumer.vscode-eslint", Method: MethodExtension, BestEffort: true},
				},
				ProfileLines: []shellrc.ProfileLine{
					{Marker: nvmDirMarker, Line: nvmDirLine},
					{Marker: nvmLoadMarker, Line: nvmLoadLine},
				},
				Notes: []string{
					"Open a new shell so the nvm loader takes effect, then `nvm use --lts`.",
				},
			},
		},
	}
}
