// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sygmaprotocol/sygma-core/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/sprintertech/across-testkit/api"
	"github.com/sprintertech/across-testkit/api/handlers"
	"github.com/sprintertech/across-testkit/chains/evm"
	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
	"github.com/sprintertech/across-testkit/config"
	"github.com/sprintertech/across-testkit/health"
	"github.com/sprintertech/across-testkit/metrics"
	"github.com/sprintertech/across-testkit/protocol/across"
	"github.com/sprintertech/across-testkit/store"
)

var Version string

// Run loads the configuration, builds one simulated spoke pool per
// configured chain, drives a canned deposit/fill/refund scenario over
// each and then serves the resulting event stores over HTTP until
// terminated.
func Run() error {
	configFlag := viper.GetString(config.ConfigFlagName)
	configuration, err := config.GetConfigFromFile(configFlag, config.DefaultConfig())
	panicOnError(err)

	logLevel, err := zerolog.ParseLevel(configuration.TestkitConfig.LogLevel)
	panicOnError(err)
	observability.ConfigureLogger(logLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	mp, err := observability.InitMetricProvider(context.Background(), configuration.TestkitConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	meter := mp.Meter("testkit-metric-provider")
	opts := metric.WithAttributes(
		attribute.String("env", configuration.TestkitConfig.Env),
		attribute.String("version", Version),
	)
	simMetrics, err := metrics.NewSimulatorMetrics(meter, opts)
	panicOnError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err = metrics.NewHostMetrics(ctx, meter, opts)
	panicOnError(err)

	pools := make(map[uint64]across.SpokePoolClient)
	stores := make(map[uint64]*store.EventStore)
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				cfg, err := evm.NewEVMConfig(chainConfig)
				panicOnError(err)

				chainID := *cfg.GeneralChainConfig.Id
				log.Info().Uint64("chain", chainID).Msgf("Running spoke pool scenario")

				clock := across.WallClock()
				st := store.NewEventStore(cfg.StartBlock, clock.Now)
				sim := across.NewSimulatedSpokePool(
					chainID,
					cfg.AcrossPool,
					st,
					across.WithClock(clock),
					across.WithEntropy(across.NewEntropy(cfg.Seed)),
					across.WithMetrics(simMetrics),
				)

				snapshot, err := runScenario(ctx, sim)
				panicOnError(err)

				out, err := json.MarshalIndent(snapshot, "", "  ")
				panicOnError(err)
				fmt.Println(string(out))

				pools[chainID] = sim
				stores[chainID] = st
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	go health.StartHealthEndpoint(configuration.TestkitConfig.HealthPort)

	eventsHandler := handlers.NewEventsHandler(stores)
	snapshotHandler := handlers.NewSnapshotHandler(pools)
	go api.Serve(ctx, configuration.TestkitConfig.ApiAddr, eventsHandler, snapshotHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func runScenario(ctx context.Context, sim *across.SimulatedSpokePool) (*across.UpdateResult, error) {
	deposits := make([]*events.FundsDeposited, 0, 3)
	for i := 0; i < 3; i++ {
		d := &events.FundsDeposited{}
		if _, err := sim.Deposit(d); err != nil {
			return nil, err
		}
		deposits = append(deposits, d)
		log.Debug().Msgf("Synthesized deposit %s at block %d", d.DepositId, d.BlockNumber)
	}

	fast := deposits[0]
	relayer := common.HexToAddress("0xbe526bA5d1ad94cC59D7A79d99A59F607d31A657")
	if _, err := sim.Fill(&events.FilledRelay{
		OriginChainId: fast.OriginChainId,
		DepositId:     fast.DepositId,
		InputToken:    fast.InputToken,
		InputAmount:   fast.InputAmount,
		OutputAmount:  fast.OutputAmount,
		Relayer:       relayer,
		Recipient:     fast.Recipient,
	}); err != nil {
		return nil, err
	}

	slow := deposits[1]
	if _, err := sim.RequestSlowFill(&events.RequestedSlowFill{
		OriginChainId: slow.OriginChainId,
		DepositId:     slow.DepositId,
		InputToken:    slow.InputToken,
		InputAmount:   slow.InputAmount,
		OutputAmount:  slow.OutputAmount,
		Depositor:     slow.Depositor,
		Recipient:     slow.Recipient,
	}); err != nil {
		return nil, err
	}
	if _, err := sim.ExecuteSlowFillLeaf(&events.SlowFillLeaf{
		RelayData: events.RelayData{
			Depositor:     slow.Depositor,
			Recipient:     slow.Recipient,
			InputToken:    slow.InputToken,
			OutputToken:   slow.OutputToken,
			InputAmount:   slow.InputAmount,
			OutputAmount:  slow.OutputAmount,
			OriginChainId: slow.OriginChainId,
			DepositId:     slow.DepositId,
			FillDeadline:  slow.FillDeadline,
		},
	}); err != nil {
		return nil, err
	}

	sped := deposits[2]
	if _, err := sim.SpeedUp(&events.RequestedSpeedUpDeposit{
		DepositId:           sped.DepositId,
		Depositor:           sped.Depositor,
		UpdatedOutputAmount: sped.OutputAmount,
		UpdatedRecipient:    sped.Recipient,
	}); err != nil {
		return nil, err
	}

	if _, err := sim.ExecuteRelayerRefundLeaf(&events.ExecutedRelayerRefundRoot{
		RootBundleId:    1,
		L2TokenAddress:  fast.OutputToken,
		RefundAddresses: []common.Address{relayer},
		RefundAmounts:   []*big.Int{fast.OutputAmount},
		AmountToReturn:  big.NewInt(0),
	}); err != nil {
		return nil, err
	}

	if _, err := sim.SetEnableRoute(&events.EnabledDepositRoute{
		OriginToken:        fast.InputToken,
		DestinationChainId: fast.DestinationChainId,
		Enabled:            true,
	}); err != nil {
		return nil, err
	}

	return sim.Update(ctx, []string{
		events.FundsDepositedSig.Name(),
		events.FilledRelaySig.Name(),
		events.RequestedSpeedUpDepositSig.Name(),
		events.RequestedSlowFillSig.Name(),
		events.ExecutedRelayerRefundRootSig.Name(),
		events.EnabledDepositRouteSig.Name(),
	})
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
