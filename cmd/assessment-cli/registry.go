// cmd/assessment-cli/registry.go
package main

import (
	"fmt"

	"career-assessment-workers/pkg/registry"

	"github.com/spf13/cobra"
)

const defaultRegistryPath = "configs/activity-registry.json"

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Manage the activity registry file",
}

var registryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the registry built from the worker schemas",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("path")
		reg := registry.Default()
		if err := reg.Validate(); err != nil {
			return err
		}
		if err := registry.SaveRegistry(reg, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d activities to %s\n", len(reg.Activities), path)
		return nil
	},
}

var registryValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a registry file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("path")
		reg, err := registry.LoadRegistry(path)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		if err := reg.Validate(); err != nil {
			return fmt.Errorf("registry validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d activities.\n", len(reg.Activities))
		return nil
	},
}

var registryUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update one field of an activity",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("path")
		id, _ := cmd.Flags().GetString("id")
		field, _ := cmd.Flags().GetString("field")
		value, _ := cmd.Flags().GetString("value")

		reg, err := registry.LoadRegistry(path)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		if err := reg.Update(id, field, value); err != nil {
			return err
		}
		if err := registry.SaveRegistry(reg, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %s, field %s to %s\n", id, field, value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registryCmd)
	registryCmd.AddCommand(registryExportCmd, registryValidateCmd, registryUpdateCmd)

	registryCmd.PersistentFlags().String("path", defaultRegistryPath, "path to registry file")

	registryUpdateCmd.Flags().String("id", "", "activity ID to update")
	registryUpdateCmd.Flags().String("field", "", "field to update (status, version, displayName, description, timeout, retries)")
	registryUpdateCmd.Flags().String("value", "", "new value for the field")
	_ = registryUpdateCmd.MarkFlagRequired("id")
	_ = registryUpdateCmd.MarkFlagRequired("field")
	_ = registryUpdateCmd.MarkFlagRequired("value")
}
