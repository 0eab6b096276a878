package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/log"
	"github.com/x-xyz/marketgo/domain"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrNoSigner         = errors.New("no operator key configured")
	// ErrTxReverted means the transaction was mined with failed status
	ErrTxReverted = errors.New("transaction reverted")
)

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
	// OperatorKey is the hex encoded private key of the submitting wallet.
	// Read-only deployments leave it empty.
	OperatorKey string
}

// Client is the raw chain boundary: view calls, state changing
// transactions awaited until mined, and historical log queries.
type Client interface {
	Call(ctx bCtx.Ctx, chainId domain.ChainId, to common.Address, blockNumber *big.Int, contractAbi abi.ABI, method string, args ...interface{}) ([]interface{}, error)
	Transact(ctx bCtx.Ctx, chainId domain.ChainId, to common.Address, value *big.Int, contractAbi abi.ABI, method string, args ...interface{}) (*types.Receipt, error)
	FilterLogs(ctx bCtx.Ctx, chainId domain.ChainId, filter ethereum.FilterQuery) ([]types.Log, error)
	Ping(ctx bCtx.Ctx, chainId domain.ChainId) error
}

type clientImpl struct {
	clients map[domain.ChainId]*ethclient.Client
	key     *ecdsa.PrivateKey
	sender  common.Address
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[domain.ChainId]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}

	im := &clientImpl{clients: clients}
	if cfg.OperatorKey != "" {
		key, err := crypto.HexToECDSA(cfg.OperatorKey)
		if err != nil {
			return nil, xerrors.Errorf("parse operator key: %w", err)
		}
		im.key = key
		im.sender = crypto.PubkeyToAddress(key.PublicKey)
	}

	if len(clients) == 0 && anyerr != nil {
		return nil, anyerr
	}
	return im, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, to common.Address, blockNumber *big.Int, contractAbi abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	input, err := contractAbi.Pack(method, args...)
	if err != nil {
		ctx.WithFields(log.Fields{"method": method, "err": err}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{To: &to, Data: input}
	output, err := client.CallContract(ctx, msg, blockNumber)
	if err != nil {
		return nil, err
	}
	return contractAbi.Unpack(method, output)
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId domain.ChainId, to common.Address, value *big.Int, contractAbi abi.ABI, method string, args ...interface{}) (*types.Receipt, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	if c.key == nil {
		return nil, ErrNoSigner
	}
	if value == nil {
		value = new(big.Int)
	}
	input, err := contractAbi.Pack(method, args...)
	if err != nil {
		ctx.WithFields(log.Fields{"method": method, "err": err}).Error("abi.Pack failed")
		return nil, err
	}
	nonce, err := client.PendingNonceAt(ctx, c.sender)
	if err != nil {
		return nil, xerrors.Errorf("pending nonce: %w", err)
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, xerrors.Errorf("suggest gas price: %w", err)
	}
	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From:  c.sender,
		To:    &to,
		Value: value,
		Data:  input,
	})
	if err != nil {
		return nil, xerrors.Errorf("estimate gas: %w", err)
	}
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     input,
	})
	signer := types.LatestSignerForChainID(big.NewInt(int64(chainId)))
	signed, err := types.SignTx(tx, signer, c.key)
	if err != nil {
		return nil, xerrors.Errorf("sign transaction: %w", err)
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		return nil, xerrors.Errorf("send transaction: %w", err)
	}
	receipt, err := bind.WaitMined(ctx, client, signed)
	if err != nil {
		return nil, xerrors.Errorf("wait mined: %w", err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, ErrTxReverted
	}
	return receipt, nil
}

func (c *clientImpl) Ping(ctx bCtx.Ctx, chainId domain.ChainId) error {
	client, ok := c.clients[chainId]
	if !ok {
		return ErrUnsupportedChain
	}
	if _, err := client.BlockNumber(ctx); err != nil {
		ctx.WithFields(log.Fields{"chainId": chainId, "err": err}).Error("ping rpc failed")
		return err
	}
	return nil
}

func (c *clientImpl) FilterLogs(ctx bCtx.Ctx, chainId domain.ChainId, filter ethereum.FilterQuery) ([]types.Log, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client.FilterLogs(ctx, filter)
}
