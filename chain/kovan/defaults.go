// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kovan

import (
	"github.com/ChainSafe/aurabridge/dot"
	"github.com/ChainSafe/aurabridge/lib/aura"
	"github.com/ChainSafe/aurabridge/lib/utils"
	"github.com/ChainSafe/aurabridge/lib/validators"
	"github.com/ethereum/go-ethereum/common"
)

var (
	// defaultName is the default chain name
	defaultName = "kovan"
	// defaultBasePath is the default data directory path
	defaultBasePath = utils.BasePath(defaultName)

	// initialValidators are the validators of the Kovan genesis
	initialValidators = []common.Address{
		common.HexToAddress("0x00D6Cc1BA9cf89BD2e58009741f4F7325BAdc0ED"),
		common.HexToAddress("0x00427feae2419c15b89d1c21af10d1b6650a4d3d"),
		common.HexToAddress("0x4Ed9B08e6354C70fE6F8CB0411b0d3246b424d6c"),
		common.HexToAddress("0x0020ee4Be0e2027d76603cB751eE069519bA81A1"),
		common.HexToAddress("0x0010f94b296a852aaac52ea6c5ac72e03afd032d"),
		common.HexToAddress("0x007733a1FE69CF3f2CF989F81C7b4cAc1693387A"),
		common.HexToAddress("0x00E6d2b931F55a3f1701c7389d592a7778897879"),
		common.HexToAddress("0x00e4a10650e5a6D6001C38ff8E64F97016a1645c"),
		common.HexToAddress("0x00a0a24b9f0e5ec7aa4c7389b8302fd0123194de"),
	}

	// reducedValidators replaced the initial validators at block 10960440
	reducedValidators = []common.Address{
		common.HexToAddress("0x00D6Cc1BA9cf89BD2e58009741f4F7325BAdc0ED"),
		common.HexToAddress("0x0010f94b296a852aaac52ea6c5ac72e03afd032d"),
		common.HexToAddress("0x00a0a24b9f0e5ec7aa4c7389b8302fd0123194de"),
	}

	// validatorsContract emits the validators changes from block 10960500
	validatorsContract = common.HexToAddress("0xaE71807C1B0a093cB1547b682DC78316D945c9B8")

	contractInitialValidators = []common.Address{
		common.HexToAddress("0xd05f7478c6aa10781258c5cc8b4f385fc8fa989c"),
		common.HexToAddress("0x03801efb0efe2a25ede5dd3a003ae880c0292e4d"),
		common.HexToAddress("0xa4df255ecf08bbf2c28055c65225c9a9847abd94"),
		common.HexToAddress("0x596e8221a30bfe6e7eff67fee664a01c73ba3c56"),
		common.HexToAddress("0xfaadface3fbd81ce37b0e19c0b65ff4234148132"),
	}
)

// ValidatorsSources returns the validators sources of the Kovan chain.
func ValidatorsSources() []validators.ScheduledSource {
	return []validators.ScheduledSource{
		{StartsAt: 0, Source: validators.NewListSource(initialValidators)},
		{StartsAt: 10960440, Source: validators.NewListSource(reducedValidators)},
		{StartsAt: 10960500, Source: validators.NewContractSource(validatorsContract, contractInitialValidators)},
	}
}

// DefaultConfig returns a Kovan bridge configuration. The genesis header
// is read from the configured header file.
func DefaultConfig() *dot.Config {
	config := dot.DefaultConfig()
	config.Global.Name = defaultName
	config.Global.BasePath = defaultBasePath
	config.Aura = aura.KovanConfiguration()
	config.Validators = ValidatorsSources()
	return config
}
