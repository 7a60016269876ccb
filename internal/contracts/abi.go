// Package contracts contains the ABIs and Go bindings for the creator factory,
// the creator marketplace and the creator ERC-20 token.
package contracts

// CreatorFactoryABI is the ABI of the CreatorFactory contract.
const CreatorFactoryABI = `[
	{
		"type": "function",
		"name": "getCreators",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{
			"name": "",
			"type": "tuple[]",
			"components": [
				{"name": "id",           "type": "uint256"},
				{"name": "name",         "type": "string"},
				{"name": "symbol",       "type": "string"},
				{"name": "tokenAddress", "type": "address"},
				{"name": "owner",        "type": "address"}
			]
		}]
	},
	{
		"type": "function",
		"name": "creatorTokenAddress",
		"stateMutability": "view",
		"inputs": [{"name": "creatorId", "type": "uint256"}],
		"outputs": [{"name": "", "type": "address"}]
	},
	{
		"type": "function",
		"name": "createCreatorToken",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "name",   "type": "string"},
			{"name": "symbol", "type": "string"}
		],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "getCreatorInfo",
		"stateMutability": "view",
		"inputs": [{"name": "creatorId", "type": "uint256"}],
		"outputs": [{
			"name": "",
			"type": "tuple",
			"components": [
				{"name": "id",           "type": "uint256"},
				{"name": "name",         "type": "string"},
				{"name": "symbol",       "type": "string"},
				{"name": "tokenAddress", "type": "address"},
				{"name": "owner",        "type": "address"}
			]
		}]
	}
]`

// CreatorMarketplaceABI is the ABI of the CreatorMarketplace contract.
const CreatorMarketplaceABI = `[
	{
		"type": "function",
		"name": "buyTokens",
		"stateMutability": "payable",
		"inputs": [
			{"name": "creatorId", "type": "uint256"},
			{"name": "amount",    "type": "uint256"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "getMinimumTokensRequired",
		"stateMutability": "view",
		"inputs": [{"name": "creatorId", "type": "uint256"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "getContentCID",
		"stateMutability": "view",
		"inputs": [{"name": "creatorId", "type": "uint256"}],
		"outputs": [{"name": "", "type": "string"}]
	},
	{
		"type": "function",
		"name": "setContentCID",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "creatorId", "type": "uint256"},
			{"name": "cid",       "type": "string"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "getTokenPrice",
		"stateMutability": "view",
		"inputs": [{"name": "creatorId", "type": "uint256"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "event",
		"name": "TokensPurchased",
		"anonymous": false,
		"inputs": [
			{"name": "creatorId", "type": "uint256", "indexed": true},
			{"name": "buyer",     "type": "address", "indexed": true},
			{"name": "amount",    "type": "uint256", "indexed": false},
			{"name": "cost",      "type": "uint256", "indexed": false}
		]
	}
]`

// CreatorTokenABI is the ABI of a CreatorToken (ERC-20 subset plus owner).
const CreatorTokenABI = `[
	{
		"type": "function",
		"name": "balanceOf",
		"stateMutability": "view",
		"inputs": [{"name": "owner", "type": "address"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "name",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "string"}]
	},
	{
		"type": "function",
		"name": "symbol",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "string"}]
	},
	{
		"type": "function",
		"name": "totalSupply",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "transfer",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to",     "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	},
	{
		"type": "function",
		"name": "owner",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "address"}]
	}
]`
