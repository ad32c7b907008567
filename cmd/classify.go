package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

var (
	classifyKex    string
	classifySig    string
	classifySym    string
	classifyFormat string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify raw algorithm names and derive a readiness verdict",
	Long: `Classify the key-exchange, signature and symmetric algorithm names as
reported by a TLS stack (for example X25519MLKEM768, ecdsa-with-SHA256,
TLS_AES_256_GCM_SHA384). Omitted roles are reported as absent.`,
	Example: `  pqcheck classify --kex X25519Kyber768Draft00 --sym TLS_AES_256_GCM_SHA384
  pqcheck classify --sig rsaEncryption -f json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseOutputFormat(classifyFormat)
		if err != nil {
			return err
		}

		assessment := pqc.Assess(classifyKex, classifySig, classifySym)
		logger.Debugw("classified",
			"kex", classifyKex,
			"sig", classifySig,
			"sym", classifySym,
			"verdict", assessment.Readiness,
		)

		out := cmd.OutOrStdout()
		if format != formatText {
			return writeStructured(out, format, assessment)
		}
		printAssessment(out, assessment)
		return nil
	},
}

var classifyOneCmd = &cobra.Command{
	Use:   "one ROLE NAME",
	Short: "Classify a single algorithm name for one role (kex, sig or sym)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := pqc.ParseRole(args[0])
		if err != nil {
			return err
		}
		format, err := parseOutputFormat(classifyFormat)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		c, ok := pqc.Classify(role, args[1])
		if format != formatText {
			var v *pqc.Classification
			if ok {
				v = &c
			}
			return writeStructured(out, format, v)
		}
		if !ok {
			fmt.Fprintf(out, "%s: absent\n", role)
			return nil
		}
		fmt.Fprintf(out, "%s: %s\n", role, describeClassification(&c))
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyKex, "kex", "", "key-exchange algorithm or group name")
	classifyCmd.Flags().StringVar(&classifySig, "sig", "", "certificate signature algorithm name")
	classifyCmd.Flags().StringVar(&classifySym, "sym", "", "negotiated cipher suite or symmetric cipher name")
	classifyCmd.PersistentFlags().StringVarP(&classifyFormat, "format", "f", string(formatText), "output format: text, json or yaml")

	classifyCmd.AddCommand(classifyOneCmd)
}
