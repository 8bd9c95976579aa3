package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yurifrl/balance/pkg/config"
	"github.com/yurifrl/balance/pkg/executors"
)

var (
	computeOpts executors.ComputeOptions
	computeArgs struct {
		balance      string
		referenceDay int
		currentDay   int
	}
	listOpts   executors.ListOptions
	adjustArgs struct {
		amount  string
		dayPaid string
	}
)

var computeCmd = &cobra.Command{
	Use:   "compute [balance]",
	Short: "Compute the balance left at the reset day",
	Long: `Compute the balance left at the reset day (normally pay day) after the
bills due between today and then. Without a balance the current balance of
--account is read from YNAB.

A negative balance is read as a flag when given as an argument; pass it
after -- (balance compute -- -50) or as --balance=-50.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := computeOpts

		raw := computeArgs.balance
		if len(args) == 1 {
			if cmd.Flags().Changed("balance") {
				return fmt.Errorf("balance given both as argument and --balance")
			}
			raw = args[0]
		}
		if len(args) == 1 || cmd.Flags().Changed("balance") {
			balance, err := config.ParseBalance(raw)
			if err != nil {
				return err
			}
			opts.Balance = &balance
		}
		if cmd.Flags().Changed("reset-day") {
			opts.ReferenceDay = &computeArgs.referenceDay
		}
		if cmd.Flags().Changed("day") {
			opts.CurrentDay = &computeArgs.currentDay
		}

		exec, err := newExecutor(cmd)
		if err != nil {
			return err
		}
		_, err = exec.Compute(opts)
		return err
	},
}

var adjustCmd = &cobra.Command{
	Use:   "adjust <name>",
	Short: "Adjust a bill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts executors.AdjustOptions
		if cmd.Flags().Changed("amount") {
			amount, err := config.ParseAmount(adjustArgs.amount)
			if err != nil {
				return err
			}
			opts.Amount = &amount
		}
		if cmd.Flags().Changed("day-paid") {
			day, err := config.ParseDayPaid(adjustArgs.dayPaid)
			if err != nil {
				return err
			}
			opts.DayPaid = &day
		}

		exec, err := newExecutor(cmd)
		if err != nil {
			return err
		}
		return exec.Adjust(args[0], opts)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all the bills",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		exec, err := newExecutor(cmd)
		if err != nil {
			return err
		}
		return exec.List(listOpts)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the bill config in your editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		exec, err := newExecutor(cmd)
		if err != nil {
			return err
		}
		return exec.Edit()
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add bills from a .xls, .csv or .txt sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exec, err := newExecutor(cmd)
		if err != nil {
			return err
		}
		_, err = exec.Import(args[0])
		return err
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the bill config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		exec, err := newExecutor(cmd)
		if err != nil {
			return err
		}
		exec.Path()
		return nil
	},
}

func init() {
	computeCmd.Flags().StringVar(&computeArgs.balance, "balance", "", "Current balance, use --balance=-50 for negative amounts")
	computeCmd.Flags().IntVarP(&computeArgs.referenceDay, "reset-day", "r", config.DefaultResetDay, "Day your bill cycle resets, normally pay day (default from settings)")
	computeCmd.Flags().IntVarP(&computeArgs.currentDay, "day", "d", 0, "Day of month to compute from (default today)")
	computeCmd.Flags().StringVar(&computeOpts.AccountID, "account", "", "YNAB account to read the balance from")
	computeCmd.Flags().String("budget", "", "YNAB budget id (default from settings, last-used)")
	computeCmd.Flags().BoolVarP(&computeOpts.Verbose, "verbose", "v", false, "Show the bills that are still due")

	adjustCmd.Flags().StringVarP(&adjustArgs.amount, "amount", "a", "", "New bill amount")
	adjustCmd.Flags().StringVarP(&adjustArgs.dayPaid, "day-paid", "d", "", "New day that the bill is paid on (1-28)")

	listCmd.Flags().BoolVarP(&listOpts.Amount, "amount", "a", false, "Include the bill amount")
	listCmd.Flags().BoolVarP(&listOpts.DayPaid, "day-paid", "d", false, "Include the day the bill is paid")
	listCmd.Flags().BoolVar(&listOpts.CSV, "csv", false, "Print as CSV")
	listCmd.Flags().BoolVar(&listOpts.Dump, "dump", false, "Dump the raw payments")

	editCmd.Flags().String("editor", "", "Editor command (default $VISUAL, then $EDITOR)")
}
