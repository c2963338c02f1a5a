//go:build e2e

package e2e

import (
	"context"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/devsetup/internal/catalog"
	"github.com/imamik/devsetup/internal/provision"
	"github.com/imamik/devsetup/internal/provision/stages"
	"github.com/imamik/devsetup/internal/shellrc"
	devtesting "github.com/imamik/devsetup/internal/testing"
	"github.com/imamik/devsetup/internal/wizard"
)

const condaListCmd = "/bin/bash -lc conda env list"

// discardObserver keeps the suite output clean; assertions run against the
// recorded commands and the profile file, not the console.
type discardObserver struct{}

func (discardObserver) Printf(string, ...interface{})                   {}
func (discardObserver) Event(provision.Event)                           {}
func (discardObserver) Progress(string, int, int)                       {}
func (discardObserver) WithFields(map[string]string) provision.Observer { return discardObserver{} }

// harness wires one scripted workflow run.
type harness struct {
	runner  *devtesting.FakeRunner
	profile string
	brew    bool
}

// run executes the full workflow the way the installer does: prerequisite
// stages, menu selection, then the selected stack.
func (h *harness) run(answers ...string) error {
	ctx := provision.NewContext(context.Background(), catalog.Default(), h.profile,
		h.runner, devtesting.NewScriptedPrompter(answers...))
	ctx.Observer = discardObserver{}

	brewPresent := h.brew
	prerequisites := []provision.Stage{
		stages.PowerCheck{},
		stages.Toolchain{},
		stages.Homebrew{
			LookPath: func(string) bool { return brewPresent },
			Setenv:   func(_, _ string) error { return nil },
		},
	}
	if err := provision.RunStages(ctx, prerequisites); err != nil {
		return err
	}

	stackID, err := wizard.SelectStack(ctx, ctx.Prompter)
	if err != nil {
		return err
	}
	spec, ok := ctx.Catalog.Stack(stackID)
	if !ok {
		return wizard.ErrInvalidSelection
	}
	return provision.RunStages(ctx, []provision.Stage{stages.NewStack(*spec)})
}

var _ = Describe("Provisioning workflow", func() {
	var h *harness

	BeforeEach(func() {
		h = &harness{
			runner:  devtesting.NewFakeRunner(),
			profile: filepath.Join(GinkgoT().TempDir(), ".zprofile"),
			brew:    true,
		}
	})

	Describe("power check", func() {
		It("runs nothing after a declined confirmation", func() {
			err := h.run("n")

			Expect(err).To(MatchError(provision.ErrUserDeclined))
			Expect(h.runner.Ran).To(BeEmpty())
		})
	})

	Describe("stack selection", func() {
		It("rejects an unknown top-level choice without retrying", func() {
			err := h.run("y", "7")

			Expect(err).To(MatchError(wizard.ErrInvalidSelection))
			Expect(h.runner.DidRun("brew install")).To(BeFalse())
		})

		It("rejects an unknown web development sub-choice", func() {
			err := h.run("y", "3", "x")

			Expect(err).To(MatchError(wizard.ErrInvalidSelection))
			Expect(h.runner.DidRun("brew install")).To(BeFalse())
		})
	})

	Describe("homebrew bootstrap", func() {
		BeforeEach(func() {
			h.brew = false
		})

		It("installs homebrew and writes the shellenv hook once", func() {
			Expect(h.run("y", "1")).To(Succeed())

			Expect(h.runner.DidRun("install.sh")).To(BeTrue())
			Expect(occurrences(h.profile, "brew shellenv")).To(Equal(1))
		})
	})

	Describe("academic stack", func() {
		It("installs every tool in catalog order", func() {
			Expect(h.run("y", "1")).To(Succeed())

			Expect(h.runner.RanCommands()).To(Equal([]string{
				"brew update",
				"brew install pandoc",
				"brew install --cask basictex",
				"brew install --cask zotero",
				"brew install --cask obsidian",
				"brew install --cask visual-studio-code",
				"code --install-extension james-yu.latex-workshop",
				"code --install-extension yzhang.markdown-all-in-one",
			}))
		})

		It("survives a failed extension install", func() {
			h.runner.WithRunFailure("code --install-extension james-yu.latex-workshop", 1)

			Expect(h.run("y", "1")).To(Succeed())
			Expect(h.runner.DidRun("yzhang.markdown-all-in-one")).To(BeTrue())
		})

		It("aborts on a failed formula install", func() {
			h.runner.WithRunFailure("brew install pandoc", 1)

			err := h.run("y", "1")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("pandoc"))
			Expect(h.runner.DidRun("basictex")).To(BeFalse())
		})
	})

	Describe("data science stack", func() {
		It("creates the conda environment before the first conda package", func() {
			Expect(h.run("y", "2")).To(Succeed())

			commands := h.runner.RanCommands()
			create := indexOf(commands, "/bin/bash -lc conda create -y -n datasci python")
			first := indexOf(commands, "/bin/bash -lc conda install -y -n datasci numpy")
			Expect(create).To(BeNumerically(">=", 0))
			Expect(first).To(BeNumerically(">", create))
		})

		It("skips conda provisioning when the environment exists", func() {
			h.runner.WithOutput(condaListCmd,
				"# conda environments:\ndatasci  /opt/homebrew/Caskroom/miniconda/base/envs/datasci\n")

			Expect(h.run("y", "2")).To(Succeed())

			Expect(h.runner.DidRun("conda create")).To(BeFalse())
			Expect(h.runner.DidRun("conda install")).To(BeFalse())
			Expect(h.runner.DidRun("brew install --cask miniconda")).To(BeTrue())
		})
	})

	Describe("web development stacks", func() {
		It("provisions the JavaScript stack through the submenu", func() {
			Expect(h.run("y", "3", "b")).To(Succeed())

			Expect(h.runner.DidRun("brew install nvm")).To(BeTrue())
			Expect(h.runner.DidRun("nvm install lts/*")).To(BeTrue())
			Expect(occurrences(h.profile, "NVM_DIR")).To(Equal(1))
			Expect(occurrences(h.profile, "nvm.sh")).To(Equal(1))
		})

		It("provisions the Python stack through the submenu", func() {
			Expect(h.run("y", "3", "a")).To(Succeed())

			Expect(h.runner.DidRun("brew install pyenv")).To(BeTrue())
			Expect(h.runner.DidRun("python3 -m pip install --user django")).To(BeTrue())
			Expect(occurrences(h.profile, "PYENV_ROOT")).To(Equal(1))
		})
	})

	Describe("idempotence", func() {
		It("never duplicates profile hooks across repeated runs", func() {
			for i := 0; i < 3; i++ {
				Expect(h.run("y", "3", "b")).To(Succeed())
			}

			Expect(occurrences(h.profile, "NVM_DIR")).To(Equal(1))
			Expect(occurrences(h.profile, "nvm.sh")).To(Equal(1))
		})
	})
})

func occurrences(profile, marker string) int {
	count, err := shellrc.Occurrences(profile, marker)
	Expect(err).NotTo(HaveOccurred())
	return count
}

func indexOf(commands []string, want string) int {
	for i, c := range commands {
		if c == want {
			return i
		}
	}
	return -1
}
