package registry

// GM tokens tradable through Jupiter RFQ, symbol to Token-2022 mint.
// ONDSon is omitted: its published mint does not decode to a 32-byte key.
var defaultGMTokens = []TokenEntry{
	{Symbol: "AALon", Mint: "9wYZetvT8J2ptfsRca5gzLBGvcUug38mp9yT3xaondo"},
	{Symbol: "AAPLon", Mint: "123mYEnRLM2LLYsJW3K6oyYh8uP1fngj732iG638ondo"},
	{Symbol: "ABBVon", Mint: "MFerpBVGKZh2jXN7cbJdXRXQTp6j6pbSnSZrfWrondo"},
	{Symbol: "ABNBon", Mint: "128qNYovdGv2YqayErcJgU7gDwbNVX1VuoxbtWz8ondo"},
	{Symbol: "ABTon", Mint: "129gRoHKhVg7CvPMrqVsEB4uYZo6zV4yDZX6NBg9ondo"},
	{Symbol: "ACHRon", Mint: "KcCVQxG9LhFYP5o9DWFKTFgFShPPQkDEemVbiFyondo"},
	{Symbol: "ACNon", Mint: "12LxMMJYVSf4LoeqjFE47BQQNRciaH9E3nbDfjH4ondo"},
	{Symbol: "ADBEon", Mint: "12Rh6JhfW4X5fKP16bbUdb4pcVCKDHFB48x8GG33ondo"},
	{Symbol: "ADIon", Mint: "LmTMwmZLNZszn3qpjmnbhfP12U4qWDivaEBwSBSondo"},
	{Symbol: "AGGon", Mint: "13qTjKx53y6LKGGStiKeieGbnVx3fx1bbwopKFb3ondo"},
	{Symbol: "AMATon", Mint: "7eRX747PSbVtGVx3qD5UFdkNM2BfTy86ikUiCMhondo"},
	{Symbol: "AMCon", Mint: "C9xNaNujcF1a5fidWAAFReFYqhLRVbyk4yPyGqzondo"},
	{Symbol: "AMDon", Mint: "14diAn5z8kjrKwSC8WLqvBqqe5YmihJhjxRxd8Z6ondo"},
	{Symbol: "AMGNon", Mint: "SS6AEWhzRrxhL2cXzKKjhFt3rCzmHHGKmFyugDTondo"},
	{Symbol: "AMZNon", Mint: "14Tqdo8V1FhzKsE3W2pFsZCzYPQxxupXRcqw9jv6ondo"},
	{Symbol: "ANETon", Mint: "Cq6QtvHpXbJWtFaiMhUDtHy8YVZ95gcD1oZ1cohondo"},
	{Symbol: "APOon", Mint: "14VXAhoa1R74vi1ZuiQyGLJrnDMfoFBPJSCpGVz3ondo"},
	{Symbol: "APPon", Mint: "14Z8rQQe2Aza33YgEUmj3g3QGNz8DXLiFPuCnsD1ondo"},
	{Symbol: "ARMon", Mint: "15SsCZqCsM9fZGhTmP4rdJTPT9WGZKazDSsgeQ8ondo"},
	{Symbol: "ASMLon", Mint: "1eLZPRsn8bAKmoxsqDMH9Q2m2k7GMNp6RLSQGm8ondo"},
	{Symbol: "AVGOon", Mint: "1FWZtdWN7y38BSXGzbs8D6Shk88oL9atDNgbVz9ondo"},
	{Symbol: "AXPon", Mint: "1WxT6NdK7uqpfXuKpALxL2n3f7Rq61XXeHA8UM4ondo"},
	{Symbol: "BABAon", Mint: "1zvb9ELBFShBCWKEk5jRTJAaPAwtVt7quEXx1X4ondo"},
	{Symbol: "BACon", Mint: "Wk8gC6iTNp8dqd4ghkJ3h1giiUnyhykwHh7tYWjondo"},
	{Symbol: "BAon", Mint: "1YVZ4LGpq8CAhpdpm3mgy7GgPb83gJczCpxLUQ3ondo"},
	{Symbol: "BBAIon", Mint: "YXE7mph6XhsgnyezkMEcTuohSuWhbLWfwx2Hh6mondo"},
	{Symbol: "BIDUon", Mint: "54CoRF2FYMZNJg9tS36xq5BUcLZ7rju1r59jGc2ondo"},
	{Symbol: "BILIon", Mint: "14kLsQVmc64qZexYuR4XGop9y8BeMkd77pJUm1Rhondo"},
	{Symbol: "BINCon", Mint: "mhZ69E1vDnAsQJXAwarLYSX5tmgeMajXBJ2rXAcondo"},
	{Symbol: "BLKon", Mint: "5H1VpMzRuoNtRbPTRCz35ETtEUtnkt8hJuQb9v7ondo"},
	{Symbol: "BLSHon", Mint: "A9PFmw9Hu8zzxDUoU351pio1E1XWBWBfWnjT9qoondo"},
	{Symbol: "BMNRon", Mint: "MYXqkDYbzr7vjXAz2BapR4AiYRXzoikGirrLoRzondo"},
	{Symbol: "BTGon", Mint: "cBnVXDyZgaaLZM18wAmqsUKnRUFAEJWbq6VuUoaondo"},
	{Symbol: "BTGOon", Mint: "bgJWGuQxyoyFeXwzYZKBmoujVdatGFYPNFnv1a6ondo"},
	{Symbol: "BZon", Mint: "doPqjCxi6UkANkvMz5fSuYGEo5PGppVpTZMeB5vondo"},
	{Symbol: "CATon", Mint: "AErxJJxGbc9cZzZoZepN62BNfg5RXns8tmEc3Zpondo"},
	{Symbol: "CEGon", Mint: "7NWHifsBnn9DimUeNnsHdEXkTZhXmJTiXxcCngBondo"},
	{Symbol: "CIFRon", Mint: "WNZBSkNBNP3Ct1pcFn6Fu4sZQFhnu48EsM9voCEondo"},
	{Symbol: "CLOAon", Mint: "t71FyTYHVkPAb5g48adDHmkVxXYbUuP2eq6jDZLondo"},
	{Symbol: "CLOIon", Mint: "ucQ3VfWAx9pkCN4Kg84zE56FtB4FJN2kQH4ArYYondo"},
	{Symbol: "CMGon", Mint: "5owVsVFSHACQuippFYdLp3qWRobp2EGcwxMmsr6ondo"},
	{Symbol: "COFon", Mint: "R2uDbMtmHq5xSS5SserrovdRKdpiqnVBCd2AHLhondo"},
	{Symbol: "COINon", Mint: "5u6KDiNJXxX4rGMfYT4BApZQC5CuDNrG6MHkwp1ondo"},
	{Symbol: "Con", Mint: "PjtfUiw6Hwd8PZ94EcUw8mBSYxp7SjjzSLeNTDKondo"},
	{Symbol: "COPon", Mint: "X68p9qTpEMkR1TLpXUP2ZJo8PG4Qge2Y2ZLdjA2ondo"},
	{Symbol: "COPXon", Mint: "X7j77hTmjZJbepkXXBcsEapM8qNgdfihkFj6CZ5ondo"},
	{Symbol: "COSTon", Mint: "6btaz134wjHkR8sqhAYrtSM6tavftfxnRvnyMd8ondo"},
	{Symbol: "CPNGon", Mint: "NKyzy31w2J7odLb2CW3Ft4fpKXkW3LBt1pvpkVLondo"},
	{Symbol: "CRCLon", Mint: "6xHEyem9hmkGtVq6XGCiQUGpPsHBaoYuYdFNZa5ondo"},
	{Symbol: "CRMon", Mint: "7D7ukbcnUNYt7Et5vtsDZhAy28MKu9pkHka1Hp9ondo"},
	{Symbol: "CRWDon", Mint: "cdKfoNjbXgnSuxvoajhtH3uixfZhq1YXhQsS1Rwondo"},
	{Symbol: "CSCOon", Mint: "7DWcZE1uVc8m2mf9pV8KNov28ET7HsvHkhrhgr9ondo"},
	{Symbol: "CVNAon", Mint: "FGmUDXqA3AbWfo5b3NUcsvwoUFCF4tr9ea6uercondo"},
	{Symbol: "CVXon", Mint: "7tgKziACteG26VjV5xKufojKxwTgCFyTwmWUmz5ondo"},
	{Symbol: "DASHon", Mint: "83P1gCFBZfGRCwJuBt9juxJKEsZwejJoG66eTZ6ondo"},
	{Symbol: "DBCon", Mint: "td1aY5AvYQuwGD75qNq9aPipMexraN9mQXJwqifondo"},
	{Symbol: "DEon", Mint: "CqQyAZjB9LGFTG95eiadGTkfhd9QA12ProeKsQmondo"},
	{Symbol: "DGRWon", Mint: "gnoSQSNTNZHViqVfxCcPDVxcRA29mrJL7C6JqYLondo"},
	{Symbol: "DISon", Mint: "mJf1xT3suXtkXBCfZcE9oUUuyxkvSgqYBWiX7v1ondo"},
	{Symbol: "DNNon", Mint: "12J2LD3tuLfdiVKnWZMHRMrbnXDY9rM4yqVLUa5yondo"},
	{Symbol: "EEMon", Mint: "916SDKz7y5ZcEZC9CtnQ5Djs1Y8Yv3UAPb6bak8ondo"},
	{Symbol: "EFAon", Mint: "AbvryMGnaba9oADMZk8Vp2Av6MtczsncGyfWaC4ondo"},
	{Symbol: "EQIXon", Mint: "aheEdmuryJU8ymy8LjYheZH5i2BW1UMsfuWQKD2ondo"},
	{Symbol: "FIGon", Mint: "aLDdFsr3VTUQaHFK6yNvQxztvxQ8nxW4AMuSGC7ondo"},
	{Symbol: "FIGRon", Mint: "ZmHxc6Gt27RJKxD2ay6UL4n9yQ7mKAq4XZQUeVhondo"},
	{Symbol: "Fon", Mint: "5hT2o25X9tGXipwhLckaUdgnxrZ6Y8eiUwdhpLeondo"},
	{Symbol: "FTGCon", Mint: "ivBnfPTyuHDNWmMSnbavckhJK6SHZW8h77nZKsEondo"},
	{Symbol: "FUTUon", Mint: "Ao5rKFRQ54W3DKSAtqfhBRPNHewwWRLNLao2JL9ondo"},
	{Symbol: "GEMIon", Mint: "NrTdGMA3ujUvWXkwXyZKnhoByb32KTjRh5Vo47yondo"},
	{Symbol: "GEon", Mint: "aTBfDuLRqYHBiG82bHA7DzwjSDTFre2dRtGH3S5ondo"},
	{Symbol: "GLDon", Mint: "hWfiw4mcxT8rnNFkk6fsCQSxoxgZ9yVhB6tyeVcondo"},
	{Symbol: "GMEon", Mint: "aznKt8v32CwYMEcTcB4bGTv8DXWStCpHrcCtyy7ondo"},
	{Symbol: "GOOGLon", Mint: "bbahNA5vT9WJeYft8tALrH1LXWffjwqVoUbqYa1ondo"},
	{Symbol: "GRABon", Mint: "m9GcsVgdjaL3KsdtSFHimnhtsUMpTHkjtwEG4Tzondo"},
	{Symbol: "GRNDon", Mint: "Gc1aT3ay7FXL3qdAW7cNSXYPDsGavy7qiACuxwxondo"},
	{Symbol: "GSon", Mint: "BchJRy2snmhJZf3rQ9LJ3ePs2BGfYgfvQNo31d2ondo"},
	{Symbol: "HDon", Mint: "MtEXKVN3Pcggy8MPA3eJr15H6SK3RXheScqj9qtondo"},
	{Symbol: "HIMSon", Mint: "bdh3njeo19d2TBLAKTGvCWdSoArfVw8uZBAJHY4ondo"},
	{Symbol: "HOODon", Mint: "BVdXGvmgi6A9oAiwWvBvP76fyTqcCNRJMM7zMN6ondo"},
	{Symbol: "HYGon", Mint: "c5ug15fwZRfQhhVa6LHscFY33ebVDHcVCezYpj7ondo"},
	{Symbol: "IAUon", Mint: "M77ZvkZ8zW5udRbuJCbuwSwavRa7bGAZYMTwru8ondo"},
	{Symbol: "IBMon", Mint: "C8bZkgSxXkyT1RgxByp2teJ24hgimPLoyEYoNa9ondo"},
	{Symbol: "IEFAon", Mint: "C9J9vZ8N79GzzxFoRkPWCkGtMKU8akg4FhUk4r9ondo"},
	{Symbol: "IEMGon", Mint: "cdVNL7wK8mf1UCDqM6zdrziRv4hmvqWhXeTcck2ondo"},
	{Symbol: "IJHon", Mint: "cfPLN9WXD2BTkbZhRZMVXPmVSiRo44hJWRtnaC8ondo"},
	{Symbol: "INTCon", Mint: "cJpUMp5R7rZ6fGeLHbHhrRuJzK9mkyKDjZqNpT3ondo"},
	{Symbol: "INTUon", Mint: "CozoH5HBTyyeYSQxHcWpGzd4Sq5XBaKzBzvTtN3ondo"},
	{Symbol: "IRENon", Mint: "13QHuepdhtJ3urNsV9i1hdL8nQoca2G7ZaLzb5FYondo"},
	{Symbol: "ISRGon", Mint: "1MGRpPrkhEsCm2GCWD3rsvEU77xTTLAzfKXeFgFondo"},
	{Symbol: "ITOTon", Mint: "CPWkMURVvcnX8hGjqCTb8i5LkzV3VSvyk7SeJi8ondo"},
	{Symbol: "IVVon", Mint: "CqW2pd6dCPG9xKZfAsTovzDsMmAGKJSDBNcwM96ondo"},
	{Symbol: "IWFon", Mint: "dSHPFuMMjZqt7xDYGWrexXTSkdEZAiZngqymQF2ondo"},
	{Symbol: "IWMon", Mint: "dvj2kKFSyjpnyYSYppgFdAEVfgjMEoQGi9VaV23ondo"},
	{Symbol: "IWNon", Mint: "DX7g7WNjDpVzNK9CG81v7wb6ZbiNzYfkdzH2Xs5ondo"},
	{Symbol: "JAAAon", Mint: "KZtqx9BJbpcGY7vdzhqPXM3ECKChxE5YhXaDiwRondo"},
	{Symbol: "JDon", Mint: "E1aUS5nyv7kaBzdQzPVJW5zfaMgoUJpKYzdnFS2ondo"},
	{Symbol: "JNJon", Mint: "KUXt7LzHWSQXp5eyqMZRxWjAP6yM8BUh4LRHwiwondo"},
	{Symbol: "JPMon", Mint: "E5Gczsavxcomqf6Cw1sGCKLabL1xYD2FzKxVoB4ondo"},
	{Symbol: "KLACon", Mint: "149o8ppQf9SzKCKXZ4v3dzHkwumvtQSRzSEkr29uondo"},
	{Symbol: "KOon", Mint: "e6G4pfFcrdKxJuZ4YXixRFfMbpMvgXG2Mjcus71ondo"},
	{Symbol: "LINon", Mint: "Edik9MoFp8LAXS9HNu2gRFyihwYqDqv4ZmNmVT9ondo"},
	{Symbol: "LIon", Mint: "v12TwfofSbvVqQ5N5KGG4d3J8rtEi4BjGfn2apyondo"},
	{Symbol: "LLYon", Mint: "eGGxZwNSfuNKRqQLKaz2hc4QkA2mau7skyxPdj7ondo"},
	{Symbol: "LMTon", Mint: "EoReHwUnGGekbXFHLj5rbCVKiwWqu32GrETMfw4ondo"},
	{Symbol: "LOWon", Mint: "edLdFJVVR532qhcrNTJjLAmhmyV7NsctbWVokMBondo"},
	{Symbol: "LRCXon", Mint: "wFJoeEYpKg9oRhyJy6BWTT3J95gmXBLvoeikDQNondo"},
	{Symbol: "MAon", Mint: "EsVHcyRxXFJCLMiuYLWhoDygrNe1BJGpYeZ17X7ondo"},
	{Symbol: "MARAon", Mint: "ETCJUmuhs5aY62xgEVWCZ5JR8KPdeXUaJz3LuC5ondo"},
	{Symbol: "MCDon", Mint: "EUbJjmDt8JA222M91bVLZs211siZ2jzbFArH9N3ondo"},
	{Symbol: "MELIon", Mint: "EWwdgGshGngcMpDV34pWZRSu5bkAuiKuKTTHKQ8ondo"},
	{Symbol: "METAon", Mint: "fDxs5y12E7x7jBwCKBXGqt71uJmCWsAQ3Srkte6ondo"},
	{Symbol: "MPon", Mint: "XwFm5GiKPVTvPiEbQpdc6vJbFEpsUXRMf6TcSxnondo"},
	{Symbol: "MRKon", Mint: "bn1fb8dwzafGePqNPrM8m8cbAKQiFqeEPuZkPySondo"},
	{Symbol: "MRNAon", Mint: "14VP7DvCAdBCc5XGNZkPt6zhtPzJrWWS64Koxtxyondo"},
	{Symbol: "MRVLon", Mint: "FovBwhoV5KQjZCdhoM6jgXYwXLX3F8vgAfvmLH7ondo"},
	{Symbol: "MSFTon", Mint: "FRmH6iRkMr33DLG6zVLR7EM4LojBFAuq6NtFzG6ondo"},
	{Symbol: "MSTRon", Mint: "FSz4ouiqXpHuGPcpacZfTzbMjScoj5FfzHkiyu2ondo"},
	{Symbol: "MTZon", Mint: "R3ywbVQ5t8LNmjQsn2Ngv43dSqyZscQwNag9G3Eondo"},
	{Symbol: "MUon", Mint: "Fz9edBpaURPPzpKVRR1A8PENYDEgHqwx5D5th28ondo"},
	{Symbol: "NEEon", Mint: "t7eN6cGwRMFaZvsNW2SmVwkedmHtDdrxA4ycNE5ondo"},
	{Symbol: "NFLXon", Mint: "g4KnPrxPLeeKkwvDmZFMtYQPM64eHeShbD55vK6ondo"},
	{Symbol: "NIKLon", Mint: "V8LRV7kWjrx6Prke9oHEHNUiR122BVtyuPciTCTondo"},
	{Symbol: "NIOon", Mint: "yQ37dFiGAbzrb2FRAEhGNzRy5zFfoYGWYhAepFEondo"},
	{Symbol: "NKEon", Mint: "g646pcdG2Rt5DH9WZzL7VVnVDWCCMTTrnktwE74ondo"},
	{Symbol: "NOWon", Mint: "G7pTVoSECz5RQWubEnTP7AC83KHUsSyoiqYR1R2ondo"},
	{Symbol: "NTESon", Mint: "YeK2TdPtGLAme3Phg4pb1GBN2YxKgX5UNVyD4asondo"},
	{Symbol: "NVDAon", Mint: "gEGtLTPNQ7jcg25zTetkbmF7teoDLcrfTnQfmn2ondo"},
	{Symbol: "NVOon", Mint: "GeV7S8vjP8qdYZpdGv2Xi6e7MUMCk8NAAp2z7g5ondo"},
	{Symbol: "OKLOon", Mint: "m6oDLvJT7rY7M1TxuLWP3pWmAPg2cCWDQR1NKiEondo"},
	{Symbol: "ONon", Mint: "13qtwy5fZi9Przz14pzo9xqFSr8QHmLyUpUCvP1xondo"},
	{Symbol: "OPENon", Mint: "ou1uE526v7zmUYP2qCb2LJgfXAyWAtWS9SETtr8ondo"},
	{Symbol: "OPRAon", Mint: "gbHFTMkuMQUy5xrgoCBdaQ2XYvNyjWAYcnRPh9Condo"},
	{Symbol: "ORCLon", Mint: "GmDADFpfwjfzZq9MfCafMDTS69MgVjtzD7Fd9a4ondo"},
	{Symbol: "OSCRon", Mint: "ThwGDsXZ6iKubWuEQjmDxGwF3bUERDGbBXvcbjFondo"},
	{Symbol: "OXYon", Mint: "1GNFMryQ6c9ZpMhgNimmsbtgYM21qnBJgRAFoNiondo"},
	{Symbol: "PALLon", Mint: "P7hTXnKk2d2DyqWnefp5BSroE1qjjKpKxg9SxQqondo"},
	{Symbol: "PANWon", Mint: "M7hVQomhw4Q2D2op3HvBrZjHu9SryjNvD5haEZ1ondo"},
	{Symbol: "PBRon", Mint: "GRciFCqJ5y2hbiD6U5mGkohY65BZTXGuGUrCqf7ondo"},
	{Symbol: "PCGon", Mint: "UP5s1srLaHDc4SwJqLPa3A48x5R7ofN3hZWxWEZondo"},
	{Symbol: "PDBCon", Mint: "M6agiXbNgy8Xon9ngiW4ZDPbMFcNCTMkMMkshZyondo"},
	{Symbol: "PDDon", Mint: "PnjETBCLC318DRejo9cMQKAmET9PvW8AEFGWMNtondo"},
	{Symbol: "PEPon", Mint: "gud6b3fYekjhMG5F818BALwbg2vt4JKoow59Md9ondo"},
	{Symbol: "PFEon", Mint: "Gwh9fPsX1qWATXy63vNaJnAFfwebWQtZaVmPko6ondo"},
	{Symbol: "PGon", Mint: "GZ8v4NdSG7CTRZqHMgNsTPRULeVi8CpdWd9wZY8ondo"},
	{Symbol: "PINSon", Mint: "sxyg1VTSzy5zYANUK7hntNtmFAWoXGJq95AcHuVondo"},
	{Symbol: "PLTRon", Mint: "HfsnTS5qtdStwec9DfBrunRqnAMYMMz1kjv9Hu9ondo"},
	{Symbol: "PLUGon", Mint: "TnfswqdE1jAJ8sfnf5J7kSVLEH1cfpAYZ8MWmKfondo"},
	{Symbol: "PSQon", Mint: "qKtU9A7ij34XmtxaSzYfxCpkgAZzzFsqnUb2kW2ondo"},
	{Symbol: "PYPLon", Mint: "hM7B3UQTTR81mS27SxDDPzBbjejmo8fnpFjzgv9ondo"},
	{Symbol: "QBTSon", Mint: "hqJXutLF6f7DxStrWCrnZDfXzbNTZmvi3KheVi6ondo"},
	{Symbol: "QCOMon", Mint: "hrmX7MV5hifoaBVjnrdpz698yABxrbBNAcWtWo9ondo"},
	{Symbol: "QQQon", Mint: "HrYNm6jTQ71LoFphjVKBTdAE4uja7WsmLG8VxB8ondo"},
	{Symbol: "RDDTon", Mint: "HXFrTf9v9NdjGUTnx4sojR3Cf92hoBsQFUxKTN7ondo"},
	{Symbol: "REMXon", Mint: "tiitb2Z1HtpB2DpVr6V7tdCFS3jmTinLeuGj9EVondo"},
	{Symbol: "RGTIon", Mint: "dwEPNKQab3iwRmjGvZPXhAmws1W5NsQGwuXwi8oondo"},
	{Symbol: "RIOTon", Mint: "i6f3DvZBuLpnGSqS8x6WPeStJ7jNe5KewD6afD5ondo"},
	{Symbol: "RIVNon", Mint: "AXRsYFt7TXNQ3DcY6BkvRgPV6VsYMURyDtaeudjondo"},
	{Symbol: "RTXon", Mint: "12BvLZtzjdssAycxPeBQUjukhmgQpULAvy6SroYdondo"},
	{Symbol: "SBETon", Mint: "iLDu2jjp2i3Uqc2Vm7K7GLiUj3hR4Un49MtD7c4ondo"},
	{Symbol: "SBUXon", Mint: "iPFqjcZQTNMNXA4kbShbMhfAVD8yr8Uq9UtXMV6ondo"},
	{Symbol: "SCHWon", Mint: "cnc6M1zXLdrGR5LAQVcaJDfgezMiVWNtGQsVy1Kondo"},
	{Symbol: "SGOVon", Mint: "HjrN6ChZK2QRL6hMXayjGPLFvxhgjwKEy135VRjondo"},
	{Symbol: "SHOPon", Mint: "ivdDracs2s7jCP698dJXKSEQdVrNj9hasJL1Uq1ondo"},
	{Symbol: "SLVon", Mint: "iy11ytbSGcUnrjE6Lfv78TFqxKyUESfku1FugS9ondo"},
	{Symbol: "SMCIon", Mint: "jLca79XzcewRuBZyaJxVxuKpUHcEix1X4CP1RP9ondo"},
	{Symbol: "SNAPon", Mint: "a2cXfonVgQ6cKB4Lm8YZsPry39VZSA562bwmRSiondo"},
	{Symbol: "SNOWon", Mint: "JmFLCBwoNvcXy6B2VqABg6m784ubkXpaEx3p7S5ondo"},
	{Symbol: "SOFIon", Mint: "mqL8yXQpeSvc7NgrAtLLPtRvUiWyLoG5RWLv16iondo"},
	{Symbol: "SOon", Mint: "aKzjn2ZdWySSGPSSDTY2HUpcSCmemSahTXihrpyondo"},
	{Symbol: "SOUNon", Mint: "vE2qArmjto6VfeMngyGAnzp2ipLYeXsxiARDnnXondo"},
	{Symbol: "SPGIon", Mint: "JrTYw7A9jihX5TwpRStYviEbsYf2X2VJpZ13719ondo"},
	{Symbol: "SPOTon", Mint: "jzCvs2Pk8tDcfsFRqnEMjurgaQW4iQfEkandUR8ondo"},
	{Symbol: "SPYon", Mint: "k18WJUULWheRkSpSquYGdNNmtuE2Vbw1hpuUi92ondo"},
	{Symbol: "SQQQon", Mint: "D1tu7Fnm3cCpKyyPXrqm5GXShPqMj7a2SEjjq9fondo"},
	{Symbol: "TCOMon", Mint: "9PMjLqd8zPdKkJUXarnit5t7tPL3cCscwHzy7ATondo"},
	{Symbol: "TIPon", Mint: "k6BPp2Xmf2TYgrZiUyWfUoZBKeqaDbvPoAVgSx2ondo"},
	{Symbol: "TLNon", Mint: "RTb54gpqAx6RpLAHRGnqQ3ciQ845CHqhg21ZzEJondo"},
	{Symbol: "TLTon", Mint: "KaSLSWByKy6b9FrCYXPEJoHmLpuFZtTCJk1F1Z9ondo"},
	{Symbol: "TMon", Mint: "kbmF7ERJWMaaDswMprrH9gHSLya5D2RMBNgKqg3ondo"},
	{Symbol: "TMOon", Mint: "T699bgtXQw4CJ59rQ4VzLsupVQUzoL5RmuhHnKrondo"},
	{Symbol: "TMUSon", Mint: "pDY4GPJfZcNETPG7myXeafQfgJqqVkn81bMYDyfondo"},
	{Symbol: "Ton", Mint: "WKMZummev5UcXz5nNKQZvTD6QjNSM2X58uwmDReondo"},
	{Symbol: "TQQQon", Mint: "14W1itEkV7k1W819mLSknFTaMmkCtPokbF2tRkPUondo"},
	{Symbol: "TSLAon", Mint: "KeGv7bsfR4MheC1CkmnAVceoApjrkvBhHYjWb67ondo"},
	{Symbol: "TSMon", Mint: "keybg184d4vyXeQdFqs4o99YsMg7xBthxTJ6Ky3ondo"},
	{Symbol: "TXNon", Mint: "81xLFvCzFaUM3KDxSHC75pXu3RPCeSeCbmGBY8aondo"},
	{Symbol: "UBERon", Mint: "KJNeFW3kk3ycPjXpC6cbuyckjeYHacc2ekhtAi5ondo"},
	{Symbol: "UNHon", Mint: "kPBGL8vAwKN3UGmr9cjkM2dU79SC3nzTC9yu7F8ondo"},
	{Symbol: "USFRon", Mint: "o6U1Sm6Vd7EofMyCrL28mrp2QLzgYGgjveHiEQ5ondo"},
	{Symbol: "USOon", Mint: "rpydAzWdCy85HEmoQkH5PVxYtDYQWjmLxgHHadxondo"},
	{Symbol: "Von", Mint: "kxEW4oJL75K37VeXaZF1ynbHQATQwhECQKN1374ondo"},
	{Symbol: "VRTon", Mint: "MkN2TZSYTFBdMRLf9EVcfhstTwnazH8knd9hpepondo"},
	{Symbol: "VSTon", Mint: "h6MW8GFpfzxFa1JNn6hZNnBF3t4fj9SHAXKy6LXondo"},
	{Symbol: "VTIon", Mint: "jCCU4GwukjNxAXJowG2S4KCrr5g6YyUB61WHYvGondo"},
	{Symbol: "VTVon", Mint: "KuiYLPVq65qixD9TgvxBC576C4gG6vVTCdbh2zFondo"},
	{Symbol: "VZon", Mint: "igu1coP6n3GPaWmbd8J9Z7UAyLpV254uQFFNfydondo"},
	{Symbol: "WFCon", Mint: "L6ZE5qCpVVSqLePz64CrwkgyWoPF9M7tB8BeFH4ondo"},
	{Symbol: "WMTon", Mint: "LZddqAqKqJW9oMZSjTxCUmbmzBRQtv9gMkD9hZ3ondo"},
	{Symbol: "WULFon", Mint: "exYfSJt6Fgfhfnp3bAD4roYy97hLF9npjYaLyEXondo"},
	{Symbol: "XOMon", Mint: "qCYD74QnXzd9pzv6pGHQKJVwoibL6sNcPQDnpDiondo"},
	{Symbol: "XYZon", Mint: "BWxe2FVciUbwrCUZQPUKiREBh5LmVa5AiUqNLAkondo"},
}

// Solver wallets allowed to act as maker on GM fills
var defaultSolvers = []string{
	"DSqMPMsMAbEJVNuPKv1ZFdzt6YvJaDPDddfeW7ajtqds",
	"2Cq2RNFFxxPXL7teNQAji1beA2vFbBDYW5BGPBFvoN9m",
	"9BB7Tt5uE5VdRsxA5XRqrjwNaq8XtgAUQW8czA6ymUPG",
}
