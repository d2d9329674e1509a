package tap_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/solo-io/homebrew-releaser/releaser/releaser_types"
	"github.com/solo-io/homebrew-releaser/tap"
)

var _ = Describe("RewriteProjectTable", func() {
	artifact := &releaser_types.FormulaArtifact{
		FormulaName: "tool",
		SourceRepo:  "tool",
		Tag:         "v1.2.0",
		Version:     "1.2.0",
		Description: "Tool for doing things",
	}

	It("replaces the existing row for the formula", func() {
		content := `# Tap

| Formula | Description | Version |
| --- | --- | --- |
| other | Something else | v2.0.0 |
| tool | Old description | v1.0.0 |

More prose below.
`
		updated, changed := tap.RewriteProjectTable(content, artifact)
		Expect(changed).To(BeTrue())
		Expect(updated).To(ContainSubstring("| tool | Tool for doing things | 1.2.0 |"))
		Expect(updated).NotTo(ContainSubstring("Old description"))
		Expect(updated).To(ContainSubstring("| other | Something else | v2.0.0 |"))
		Expect(updated).To(ContainSubstring("More prose below."))
	})

	It("appends a row when the formula is not listed yet", func() {
		content := `| Formula | Description | Version |
| --- | --- | --- |
| other | Something else | v2.0.0 |

Footer.
`
		updated, changed := tap.RewriteProjectTable(content, artifact)
		Expect(changed).To(BeTrue())
		Expect(updated).To(ContainSubstring("| other | Something else | v2.0.0 |\n| tool | Tool for doing things | 1.2.0 |\n"))
	})

	It("appends to a table that ends the document", func() {
		content := "| Formula | Description | Version |\n| --- | --- | --- |\n| other | x | v1 |"
		updated, changed := tap.RewriteProjectTable(content, artifact)
		Expect(changed).To(BeTrue())
		Expect(updated).To(HaveSuffix("| tool | Tool for doing things | 1.2.0 |"))
	})

	It("reports no change when the row is already current", func() {
		content := `| Formula | Description | Version |
| --- | --- | --- |
| tool | Tool for doing things | 1.2.0 |
`
		updated, changed := tap.RewriteProjectTable(content, artifact)
		Expect(changed).To(BeFalse())
		Expect(updated).To(Equal(content))
	})

	It("leaves documents without a table untouched", func() {
		content := "# Tap\n\nJust prose, no table.\n"
		updated, changed := tap.RewriteProjectTable(content, artifact)
		Expect(changed).To(BeFalse())
		Expect(updated).To(Equal(content))
	})
})
