// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Binary generator generates Python classes corresponding to a YANG schema.
// The input set of YANG modules are read, parsed using Goyang, and handed to
// the pyclass package which computes the classes of each module and the
// names of their attributes. The classes are rendered into Python source
// files using the templates found in the template directory.
//
// Flags may also be set in a configuration file, supplied with
// --config_file, or through environment variables prefixed with YPYGEN_,
// e.g., YPYGEN_OUT_DIR.
package main

import (
	goflag "flag"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/golang/glog"
	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/ypygen/pyclass"
	"github.com/openconfig/ypygen/pyrender"
	"github.com/openconfig/ypygen/yschema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is the prefix of environment variables that set flags.
const envPrefix = "ypygen"

// newRootCmd returns the generator command. Flag values are resolved
// through v.
func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "generator [flags] <yang files or globs>...",
		Short: "generator generates Python classes for a set of YANG modules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(v, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fs := rootCmd.Flags()
	cfgFile := rootCmd.PersistentFlags().String("config_file", "", "Path to config file.")
	fs.String("path", "", "Comma separated list of paths to be recursively searched for included modules or submodules within the defined YANG modules.")
	fs.StringSlice("exclude_modules", nil, "Comma separated set of module names that should be excluded from code generation.")
	fs.StringSlice("org_prefixes", pyclass.DefaultOrgPrefixes, "Comma separated set of organisation prefixes that are removed from module names to form the name of a module's output directory.")
	fs.String("out_dir", "", "The directory that the Python classes should be written to. It is created if it does not exist.")
	fs.String("template_dir", "templates", "The directory containing the templates that the Python classes are rendered from.")
	fs.String("base_template", pyrender.DefaultBaseTemplate, "The file name of the template of base classes within template_dir.")
	fs.String("derived_template", pyrender.DefaultDerivedTemplate, "The file name of the template of derived classes within template_dir. Derived classes are only generated if it exists.")
	fs.Bool("write_manifest", false, "If set to true, a manifest listing the generated classes is written for each module.")
	fs.Bool("ignore_circdeps", false, "If set to true, circular dependencies between submodules are ignored.")
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// glog reads its configuration from the standard flag set, which
		// cobra has already populated.
		if err := goflag.CommandLine.Parse(nil); err != nil {
			return err
		}
		if *cfgFile != "" {
			v.SetConfigFile(*cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
		}
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
		return nil
	}
	return rootCmd
}

// generate loads the modules named by args and renders their classes
// according to the configuration held by v.
func generate(v *viper.Viper, args []string) error {
	// Determine the set of paths that should be searched for included
	// modules. Each is searched recursively.
	var includePaths []string
	if p := v.GetString("path"); p != "" {
		for _, path := range strings.Split(p, ",") {
			includePaths = append(includePaths, filepath.Join(path, "..."))
		}
	}

	// Configuration problems are reported before any module is read.
	r, err := pyrender.NewRenderer(&pyrender.Config{
		OutputDir:       v.GetString("out_dir"),
		TemplateDir:     v.GetString("template_dir"),
		BaseTemplate:    v.GetString("base_template"),
		DerivedTemplate: v.GetString("derived_template"),
		WriteManifest:   v.GetBool("write_manifest"),
	})
	if err != nil {
		return err
	}

	entries, errs := yschema.LoadModules(args, includePaths, yang.Options{
		IgnoreSubmoduleCircularDependencies: v.GetBool("ignore_circdeps"),
	})
	if errs != nil {
		return fmt.Errorf("cannot load YANG modules: %v", errs)
	}

	gm, errs := pyclass.Generate(entries, &pyclass.Config{
		OrgPrefixes:    v.GetStringSlice("org_prefixes"),
		ExcludeModules: v.GetStringSlice("exclude_modules"),
	})
	if errs != nil {
		return fmt.Errorf("cannot generate classes: %v", errs)
	}
	if len(gm.Warnings) != 0 {
		log.Warningf("%d naming problems were resolved during generation, see the log for details", len(gm.Warnings))
	}

	if errs := r.Render(gm); errs != nil {
		return fmt.Errorf("cannot render classes: %v", errs)
	}
	return nil
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		log.Exitf("Error: %v", err)
	}
}
